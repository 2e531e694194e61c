package errutil

import (
	"errors"
	"testing"

	"src.tddcalc.sh/pkg/tt"
)

var (
	err1 = errors.New("error 1")
	err2 = errors.New("error 2")
	err3 = errors.New("error 3")
)

func TestMulti(t *testing.T) {
	tt.Test(t, tt.Fn("Multi", Multi), tt.Table{
		tt.Args().Rets(nil),
		tt.Args(err1).Rets(err1),
	})
	if err := Multi(nil, err1, nil); err != err1 {
		t.Errorf("Multi(nil, err1, nil) = %v, want err1", err)
	}
	if err := Multi(nil, nil); err != nil {
		t.Errorf("Multi(nil, nil) = %v, want nil", err)
	}
}

func TestMulti_Flattens(t *testing.T) {
	err := Multi(Multi(err1, err2), err3)
	me, ok := err.(multiError)
	if !ok || len(me) != 3 {
		t.Errorf("Multi(Multi(err1, err2), err3) = %#v, want 3 flattened errors", err)
	}
}

func TestMulti_Error(t *testing.T) {
	err := Multi(err1, err2)
	want := "multiple errors: error 1; error 2"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestMulti_Is(t *testing.T) {
	err := Multi(err1, Multi(err2, err3))
	for _, target := range []error{err1, err2, err3} {
		if !errors.Is(err, target) {
			t.Errorf("errors.Is(%v, %v) = false, want true", err, target)
		}
	}
}
