package calc

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/agbru/bigmod/internal/bigint"
	apperrors "github.com/agbru/bigmod/internal/errors"
)

var planOrder = []string{"add", "sub", "mul", "rsh", "mod", "quo", "gcd", "lcm", "modadd", "modsub", "modmul", "modsquare", "modpow"}

func names(ops []Operation) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.Name()
	}
	return out
}

func TestDefaultRegistry_List(t *testing.T) {
	t.Parallel()

	want := []string{"add", "gcd", "lcm", "mod", "modadd", "modmul", "modpow", "modsquare", "modsub", "mul", "quo", "rsh", "sub"}
	if got := NewDefaultRegistry().List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	r := NewDefaultRegistry()
	tests := []struct {
		spec string
		want []string
	}{
		{"all", planOrder},
		{"", planOrder},
		{" ALL ", planOrder},
		{"gcd,lcm", []string{"gcd", "lcm"}},
		{"modpow, add ,modpow", []string{"modpow", "add"}},
		{"mod,,quo", []string{"mod", "quo"}},
	}
	for _, tt := range tests {
		ops, err := r.Resolve(tt.spec)
		if err != nil {
			t.Errorf("Resolve(%q) unexpected error: %v", tt.spec, err)
			continue
		}
		if got := names(ops); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Resolve(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestRegistry_ResolveErrors(t *testing.T) {
	t.Parallel()

	r := NewDefaultRegistry()
	for _, spec := range []string{"gcd,pow", ",", "fft"} {
		_, err := r.Resolve(spec)
		var ve apperrors.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("Resolve(%q) error = %v, want ValidationError", spec, err)
			continue
		}
		if ve.Field != "ops" {
			t.Errorf("Resolve(%q) field = %q", spec, ve.Field)
		}
	}
}

func TestRegistry_GetCachesInstrumented(t *testing.T) {
	t.Parallel()

	r := NewDefaultRegistry()
	op1, err := r.Get("gcd")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	op2, _ := r.Get("gcd")
	if op1 != op2 {
		t.Error("Get should return the cached instance")
	}
	if _, ok := op1.(*Instrumented); !ok {
		t.Errorf("Get returned %T, want *Instrumented", op1)
	}
	if op1.Arity() != "gcd(a, b)" {
		t.Errorf("Arity() = %q", op1.Arity())
	}
}

type constOp struct {
	name  string
	value int64
}

func (c constOp) Name() string  { return c.name }
func (c constOp) Arity() string { return "const" }
func (c constOp) Apply(_ context.Context, in Operands) (bigint.BigInt, error) {
	return in.A.Params().FromInt(c.value), nil
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	r := NewDefaultRegistry()
	old, _ := r.Get("add")
	if err := r.Register(constOp{name: "add", value: 7}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(constOp{name: "seven", value: 7}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	op, _ := r.Get("add")
	if op == old {
		t.Error("re-registering must drop the cached decorator")
	}

	p := bigint.MustNewParams(10, 4)
	got, err := op.Apply(context.Background(), Operands{A: p.FromInt(1), B: p.FromInt(1), M: p.FromInt(9)})
	if err != nil || got.Big().Int64() != 7 {
		t.Errorf("replaced add = %v, %v", got, err)
	}

	ops, _ := r.Resolve("all")
	got2 := names(ops)
	if got2[0] != "add" || got2[len(got2)-1] != "seven" {
		t.Errorf("plan order = %v", got2)
	}

	for _, bad := range []Operation{constOp{name: ""}, constOp{name: "all"}, constOp{name: "a,b"}} {
		if err := r.Register(bad); err == nil {
			t.Errorf("Register(%q) should fail", bad.Name())
		}
	}
	if err := r.Register(nil); err == nil {
		t.Error("Register(nil) should fail")
	}
	if !r.Has("seven") || r.Has("eight") {
		t.Error("Has is wrong")
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	r := NewDefaultRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%4 == 0 {
				_ = r.Register(constOp{name: "extra", value: int64(i)})
			}
			if _, err := r.Resolve("all"); err != nil {
				t.Errorf("Resolve: %v", err)
			}
			_ = r.List()
		}(i)
	}
	wg.Wait()
}
