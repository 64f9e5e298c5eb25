package calc_test

import (
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzCalculate(f *testing.F) {
	f.Add("3 + 4 * 2")
	f.Add("-2^2")
	f.Add("(1.5)--.5/0")
	f.Add("((")
	f.Fuzz(func(t *testing.T, s string) {
		r := calc.Calculate(s)
		if r.Kind == calc.KindInternal {
			t.Errorf("%q gave internal error: %v", s, r.Err)
		}
		if r.OK != (r.Err == nil) {
			t.Errorf("%q gave ok=%t with error %v", s, r.OK, r.Err)
		}
	})
}

func FuzzTokenize(f *testing.F) {
	f.Add("1.2.3")
	f.Add("3--2")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		tokens, err := calc.Tokenize(s)
		if err != nil {
			return
		}
		if err := calc.Validate(tokens); err != nil {
			return
		}
		if _, err := calc.ToPostfix(tokens); err != nil {
			t.Errorf("%q validated but failed to convert: %v", s, err)
		}
	})
}
