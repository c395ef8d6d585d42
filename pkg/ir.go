package arith

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// ExprFuncName is the name of the generated function returning the value
// of the expression.
const ExprFuncName = "expr"

type LLVMIRBuilder struct {
	mod *ir.Module
}

func NewLLVMIRBuilder() *LLVMIRBuilder {
	return &LLVMIRBuilder{
		mod: ir.NewModule(),
	}
}

// function defines `double @expr()` computing tree.
func (b *LLVMIRBuilder) function(tree Expr) *ir.Func {
	f := b.mod.NewFunc(ExprFuncName, types.Double)
	block := f.NewBlock("")

	v, ins := b.recursiveLoad(tree)
	block.Insts = append(block.Insts, ins...)
	block.NewRet(v)

	return f
}

func (b *LLVMIRBuilder) recursiveLoad(expr Expr) (value.Value, []ir.Instruction) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return constant.NewFloat(types.Double, float64(e.Value)), []ir.Instruction{}
	case *BinaryExpr:
		return b.binaryExpression(e)
	default:
		panic("unexpected expression node")
	}
}

func (b *LLVMIRBuilder) binaryExpression(expr *BinaryExpr) (value.Value, []ir.Instruction) {
	v1, i1 := b.recursiveLoad(expr.Left)
	v2, i2 := b.recursiveLoad(expr.Right)
	ins := append(i1, i2...)

	switch expr.Operation {
	case OperatorPlus:
		op := ir.NewFAdd(v1, v2)
		return op, append(ins, op)
	case OperatorMinus:
		op := ir.NewFSub(v1, v2)
		return op, append(ins, op)
	case OperatorMultiply:
		op := ir.NewFMul(v1, v2)
		return op, append(ins, op)
	case OperatorDivide:
		op := ir.NewFDiv(v1, v2)
		return op, append(ins, op)
	default:
		panic("unexpected binary op: " + string(expr.Operation))
	}
}

type LLVMGenerator struct {
	tree Expr
}

func NewLLVMGenerator(tree Expr) *LLVMGenerator {
	return &LLVMGenerator{
		tree: tree,
	}
}

// Do lowers the tree into a module holding @expr and a main that prints
// its result.
func (g LLVMGenerator) Do() *ir.Module {
	builder := NewLLVMIRBuilder()
	f := builder.function(g.tree)
	defineMain(builder, f)

	return builder.mod
}
