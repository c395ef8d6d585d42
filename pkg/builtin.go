package arith

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
)

// defineMain adds `i32 @main()` which prints the result of expr.
func defineMain(b *LLVMIRBuilder, expr *ir.Func) *ir.Func {
	printf := definePrintf(b.mod)

	format := constant.NewCharArrayFromString("%f\n\x00")
	formatGlob := b.mod.NewGlobalDef("._printf_fmt", format)

	zero := constant.NewInt(types.I32, 0)
	fmtAddr := constant.NewGetElementPtr(format.Typ, formatGlob, zero, zero)

	f := b.mod.NewFunc("main", types.I32)
	block := f.NewBlock("")

	res := block.NewCall(expr)
	block.NewCall(printf, fmtAddr, res)
	block.NewRet(zero)

	return f
}

func definePrintf(mod *ir.Module) *ir.Func {
	printf := mod.NewFunc("printf", types.I32, ir.NewParam("format", types.I8Ptr))
	printf.Sig.Variadic = true

	return printf
}
