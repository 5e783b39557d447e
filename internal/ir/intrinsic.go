package ir

import "fmt"

// Intrinsic identifies a built-in primitive operation.
type Intrinsic uint8

const (
	// arithmetic
	Plus    Intrinsic = iota // +
	Minus                    // -
	Mult                     // *
	Divmod                   // divmod
	Idivmod                  // idivmod
	Max                      // max

	// comparison
	Eq // =
	Gt // >
	Lt // <
	Ge // >=
	Le // <=
	Ne // !=

	// bitwise
	Shr // shr
	Shl // shl
	Or  // or
	And // and
	Not // not

	Print // print

	// stack shuffling
	Dup  // dup
	Swap // swap
	Drop // drop
	Over // over
	Rot  // rot

	// sized memory access
	Load8   // @8
	Store8  // !8
	Load16  // @16
	Store16 // !16
	Load32  // @32
	Store32 // !32
	Load64  // @64
	Store64 // !64

	// casts
	CastPtr  // cast(ptr)
	CastInt  // cast(int)
	CastBool // cast(bool)
	CastAddr // cast(addr)

	// process environment
	Argc // argc
	Argv // argv
	Envp // envp

	// syscalls by arity
	Syscall0 // syscall0
	Syscall1 // syscall1
	Syscall2 // syscall2
	Syscall3 // syscall3
	Syscall4 // syscall4
	Syscall5 // syscall5
	Syscall6 // syscall6

	Debug // debug marker

	intrinsicMax
)

var intrinsicNames = [intrinsicMax]string{
	"Plus", "Minus", "Mult", "Divmod", "Idivmod", "Max",
	"Eq", "Gt", "Lt", "Ge", "Le", "Ne",
	"Shr", "Shl", "Or", "And", "Not",
	"Print",
	"Dup", "Swap", "Drop", "Over", "Rot",
	"Load8", "Store8", "Load16", "Store16", "Load32", "Store32", "Load64", "Store64",
	"CastPtr", "CastInt", "CastBool", "CastAddr",
	"Argc", "Argv", "Envp",
	"Syscall0", "Syscall1", "Syscall2", "Syscall3", "Syscall4", "Syscall5", "Syscall6",
	"Debug",
}

func (in Intrinsic) String() string {
	if in < intrinsicMax {
		return intrinsicNames[in]
	}
	return fmt.Sprintf("Intrinsic(%d)", int(in))
}
