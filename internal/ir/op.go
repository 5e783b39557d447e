package ir

import (
	"fmt"
	"strconv"

	"github.com/jcorbin/goproc/internal/lexer"
)

// OpKind identifies the variant of an Op.
type OpKind uint8

const (
	// literal pushes; Operand holds the value or its address
	OpPushInt OpKind = iota
	OpPushBool
	OpPushPtr
	OpPushAddr
	OpPushGlobalMem
	OpPushLocalMem
	OpPushStr
	OpPushCstr

	// OpIntrinsic runs Op.Intrinsic
	OpIntrinsic

	// control flow; Operand is a jump target, 0 until resolved
	OpIf
	OpIfStar
	OpElse
	OpEndIf
	OpEndWhile
	OpPrepProc
	OpRet
	OpCall
	OpInlined
	OpWhile
	OpDo
	OpCallLike

	// variable bindings; Operand is a binding slot index
	OpBindLet
	OpBindPeek
	OpUnBind
	OpPushBind

	opKindMax
)

var opKindNames = [opKindMax]string{
	"PushInt", "PushBool", "PushPtr", "PushAddr",
	"PushGlobalMem", "PushLocalMem", "PushStr", "PushCstr",
	"Intrinsic",
	"If", "IfStar", "Else", "EndIf", "EndWhile",
	"PrepProc", "Ret", "Call", "Inlined",
	"While", "Do", "CallLike",
	"BindLet", "BindPeek", "UnBind", "PushBind",
}

func (kind OpKind) String() string {
	if kind < opKindMax {
		return opKindNames[kind]
	}
	return fmt.Sprintf("OpKind(%d)", int(kind))
}

// HasOperand returns true if ops of this kind carry an Operand.
func (kind OpKind) HasOperand() bool {
	return kind < opKindMax && kind != OpIntrinsic && kind != OpEndIf
}

// Op is a single operation in a procedure body. Token is the source token
// that produced it.
type Op struct {
	Kind      OpKind
	Operand   int64
	Intrinsic Intrinsic
	Token     lexer.Token
}

// PushInt returns an op that pushes the integer n.
func PushInt(n int64, tok lexer.Token) Op { return Op{Kind: OpPushInt, Operand: n, Token: tok} }

// Intrinsically returns an op that runs the intrinsic in.
func Intrinsically(in Intrinsic, tok lexer.Token) Op {
	return Op{Kind: OpIntrinsic, Intrinsic: in, Token: tok}
}

// String renders the op like "PushInt(1)", "Intrinsic(Print)", or "EndIf".
func (op Op) String() string {
	switch {
	case op.Kind == OpIntrinsic:
		return fmt.Sprintf("%v(%v)", op.Kind, op.Intrinsic)
	case op.Kind == OpPushBool:
		return fmt.Sprintf("%v(%v)", op.Kind, op.Operand != 0)
	case op.Kind.HasOperand():
		return op.Kind.String() + "(" + strconv.FormatInt(op.Operand, 10) + ")"
	default:
		return op.Kind.String()
	}
}
