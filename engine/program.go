package engine

// Instruction symbols.
const (
	opRight  = '>'
	opLeft   = '<'
	opInc    = '+'
	opDec    = '-'
	opOutput = '.'
	opInput  = ','
	opOpen   = '['
	opClose  = ']'
)

// EndOfProgram is reported as the next instruction once the instruction
// pointer has run past the last instruction.
const EndOfProgram = "EOF"

// program is a compiled instruction sequence with its jump table.
type program struct {
	code []byte

	// jumps maps each bracket index to its partner; -1 for other
	// instructions.
	jumps []int
}

func isInstruction(c byte) bool {
	switch c {
	case opRight, opLeft, opInc, opDec, opOutput, opInput, opOpen, opClose:
		return true
	default:
		return false
	}
}

// filter keeps only instruction symbols. All instructions are ASCII, so
// scanning bytes never splits a multi-byte character into a false match.
func filter(source string) []byte {
	code := make([]byte, 0, len(source))
	for i := 0; i < len(source); i++ {
		if isInstruction(source[i]) {
			code = append(code, source[i])
		}
	}
	return code
}

// compile filters source and matches its brackets by nesting.
func compile(source string) (program, error) {
	code := filter(source)
	jumps := make([]int, len(code))
	var stack []int
	for i, c := range code {
		jumps[i] = -1
		switch c {
		case opOpen:
			stack = append(stack, i)
		case opClose:
			if len(stack) == 0 {
				return program{}, &ParseError{Index: i, Bracket: opClose}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jumps[open] = i
			jumps[i] = open
		}
	}
	if len(stack) > 0 {
		return program{}, &ParseError{Index: stack[0], Bracket: opOpen}
	}
	return program{code: code, jumps: jumps}, nil
}

// next returns the instruction at ip as a string, or EndOfProgram.
func (p program) next(ip int) string {
	if ip < 0 || ip >= len(p.code) {
		return EndOfProgram
	}
	return string(p.code[ip])
}
