// Package opcode encodes and decodes the instruction stream of a compiled
// plugin's code section.
//
// Every instruction is one cell holding the opcode, followed by a fixed,
// opcode-specific number of operand cells. Cells are 32-bit signed
// integers in the byte order of the enclosing container.
package opcode

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CellSize is the size of a cell in bytes.
const CellSize = 4

// Op identifies an instruction.
type Op int32

type info struct {
	name  string
	nargs int
}

// String returns the mnemonic, e.g. "push.c".
func (op Op) String() string {
	if i, ok := table[op]; ok {
		return i.name
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// NumArgs returns the number of operands, or false for an unknown opcode.
func (op Op) NumArgs() (int, bool) {
	i, ok := table[op]
	return i.nargs, ok
}

// Lookup returns the opcode for a mnemonic.
func Lookup(mnemonic string) (Op, bool) {
	for op, i := range table {
		if i.name == mnemonic {
			return op, true
		}
	}
	return 0, false
}

// UnknownOpcodeError is returned when decoding an undefined opcode.
type UnknownOpcodeError struct {
	Op     Op
	Offset int64 // byte offset of the opcode cell, -1 if unknown
}

func (e *UnknownOpcodeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("opcode: unknown opcode %d", int32(e.Op))
	}
	return fmt.Sprintf("opcode: unknown opcode %d at offset 0x%x", int32(e.Op), e.Offset)
}

// OperandCountError is returned when encoding an instruction with the
// wrong number of operands.
type OperandCountError struct {
	Op        Op
	Want, Got int
}

func (e *OperandCountError) Error() string {
	return fmt.Sprintf("opcode: %s takes %d operand(s), got %d", e.Op, e.Want, e.Got)
}

// --------------------------------------------------------------------

// Instruction is a decoded instruction.
type Instruction struct {
	Op   Op
	Args []int32
}

// New returns an instruction.
func New(op Op, args ...int32) Instruction {
	return Instruction{Op: op, Args: args}
}

// Size returns the encoded size in bytes.
func (ins Instruction) Size() int { return (1 + len(ins.Args)) * CellSize }

func (ins Instruction) String() string {
	if len(ins.Args) == 0 {
		return ins.Op.String()
	}

	var sb strings.Builder
	sb.WriteString(ins.Op.String())
	for _, a := range ins.Args {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatInt(int64(a), 10))
	}
	return sb.String()
}

func (ins Instruction) validate() error {
	n, ok := ins.Op.NumArgs()
	if !ok {
		return &UnknownOpcodeError{Op: ins.Op, Offset: -1}
	}
	if n != len(ins.Args) {
		return &OperandCountError{Op: ins.Op, Want: n, Got: len(ins.Args)}
	}
	return nil
}

// Append appends the encoded instruction to dst.
func Append(dst []byte, order binary.ByteOrder, ins Instruction) ([]byte, error) {
	if err := ins.validate(); err != nil {
		return dst, err
	}

	var cell [CellSize]byte
	order.PutUint32(cell[:], uint32(ins.Op))
	dst = append(dst, cell[:]...)
	for _, a := range ins.Args {
		order.PutUint32(cell[:], uint32(a))
		dst = append(dst, cell[:]...)
	}
	return dst, nil
}

// Encode writes instructions to w. Nothing is written if any instruction
// is invalid.
func Encode(w io.Writer, order binary.ByteOrder, ins ...Instruction) error {
	var buf []byte
	for _, in := range ins {
		var err error
		if buf, err = Append(buf, order, in); err != nil {
			return err
		}
	}
	_, err := w.Write(buf)
	return err
}

// Decode reads a single instruction. It returns io.EOF if r is exhausted
// before the first byte and io.ErrUnexpectedEOF if it ends inside an
// instruction.
func Decode(r io.Reader, order binary.ByteOrder) (Instruction, error) {
	var cell [CellSize]byte
	if _, err := io.ReadFull(r, cell[:]); err != nil {
		return Instruction{}, err
	}

	op := Op(int32(order.Uint32(cell[:])))
	n, ok := op.NumArgs()
	if !ok {
		return Instruction{}, &UnknownOpcodeError{Op: op, Offset: -1}
	}

	ins := Instruction{Op: op}
	if n != 0 {
		ins.Args = make([]int32, n)
	}
	for i := range ins.Args {
		if _, err := io.ReadFull(r, cell[:]); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return Instruction{}, err
		}
		ins.Args[i] = int32(order.Uint32(cell[:]))
	}
	return ins, nil
}

// DecodeAll decodes every instruction in b.
func DecodeAll(b []byte, order binary.ByteOrder) ([]Instruction, error) {
	var out []Instruction
	for off := 0; off < len(b); {
		if len(b)-off < CellSize {
			return out, io.ErrUnexpectedEOF
		}

		op := Op(int32(order.Uint32(b[off:])))
		n, ok := op.NumArgs()
		if !ok {
			return out, &UnknownOpcodeError{Op: op, Offset: int64(off)}
		}
		size := (1 + n) * CellSize
		if len(b)-off < size {
			return out, io.ErrUnexpectedEOF
		}

		ins := Instruction{Op: op}
		if n != 0 {
			ins.Args = make([]int32, n)
		}
		for i := range ins.Args {
			ins.Args[i] = int32(order.Uint32(b[off+(i+1)*CellSize:]))
		}
		out = append(out, ins)
		off += size
	}
	return out, nil
}
