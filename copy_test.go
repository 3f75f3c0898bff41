package dataobject_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dataobject "github.com/lord-saumagen/DataObjectExtension"
	"github.com/lord-saumagen/DataObjectExtension/mapping"
)

func TestCopyToTargetArgument(t *testing.T) {
	t.Parallel()

	type record struct{ Name string }

	assert.ErrorIs(t, dataobject.CopyTo(record{Name: "x"}, nil), dataobject.ErrNilTarget)
	assert.ErrorIs(t, dataobject.CopyTo(record{Name: "x"}, record{}), dataobject.ErrNilTarget)
	assert.ErrorIs(t, dataobject.CopyTo(record{Name: "x"}, (*record)(nil)), dataobject.ErrNilTarget)
}

func TestCopyToIdentity(t *testing.T) {
	t.Parallel()

	type persisted struct {
		Label   string
		Version int
	}

	type viewed struct {
		Label   string
		Version int
		Cached  bool
	}

	src := persisted{Label: "x", Version: 2}
	dst := viewed{Cached: true}

	require.NoError(t, dataobject.CopyTo(src, &dst))
	assert.Equal(t, viewed{Label: "x", Version: 2, Cached: true}, dst)

	assert.True(t, dataobject.IsEqualTo(src, dst), "copy followed by compare must hold")
}

func TestCopyToPlanningFailureLeavesTargetUntouched(t *testing.T) {
	t.Parallel()

	type source struct {
		Label string
		Extra int // no counterpart on the target
	}

	type target struct{ Label string }

	dst := target{Label: "before"}
	before := dst

	err := dataobject.CopyTo(source{Label: "after", Extra: 1}, &dst)
	require.ErrorIs(t, err, dataobject.ErrMissingTarget)
	assert.ErrorContains(t, err, "Extra")

	if diff := cmp.Diff(before, dst); diff != "" {
		t.Errorf("target mutated despite planning failure (-before +after):\n%s", diff)
	}
}

func TestCopyToConversionFailureIsPartial(t *testing.T) {
	t.Parallel()

	type pair struct {
		First  int
		Second int
	}

	boom, err := mapping.NewMap("Second", "Second", func(any) (any, error) {
		return nil, fmt.Errorf("boom")
	})
	require.NoError(t, err)

	src := pair{First: 10, Second: 20}
	dst := pair{First: 1, Second: 2}

	err = dataobject.CopyTo(src, &dst, dataobject.OptionTable(mapping.Table{boom}))

	var convErr *dataobject.ConvertError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "Second", convErr.SourceName)
	assert.Equal(t, "Second", convErr.TargetName)
	assert.ErrorContains(t, convErr, "boom")

	// Pairs written before the failure remain written: caller must
	// discard the target.
	assert.Equal(t, 10, dst.First)
	assert.Equal(t, 2, dst.Second)
}

func TestCopyToPointerProperties(t *testing.T) {
	t.Parallel()

	type record struct{ Score *float64 }

	score := 7.5
	src := record{Score: &score}

	var dst record
	require.NoError(t, dataobject.CopyTo(src, &dst))
	require.NotNil(t, dst.Score)
	assert.Equal(t, 7.5, *dst.Score)
	assert.NotSame(t, src.Score, dst.Score, "copy must not alias the source pointer")

	require.NoError(t, dataobject.CopyTo(record{}, &dst))
	assert.Nil(t, dst.Score, "nil source must clear the target pointer")
}

func TestCopyToExclusion(t *testing.T) {
	t.Parallel()

	type record struct {
		ID   int
		Name string
	}

	src := record{ID: 9, Name: "x"}
	dst := record{ID: 1}

	skipID := func(d dataobject.Descriptor) bool { return d.Name == "ID" }
	require.NoError(t, dataobject.CopyTo(src, &dst, dataobject.OptionExclude(skipID)))

	assert.Equal(t, record{ID: 1, Name: "x"}, dst)
}

// Converters below are written total over both sides of the pair, so
// that comparison can push the target's raw value through the same
// transformation as the source's.
func TestCopyToMappedConversionScenario(t *testing.T) {
	t.Parallel()

	type checkModel struct {
		Validate      bool
		NumberOfChars int
	}

	type viewModel struct {
		IsValid string
		IsEmpty bool
	}

	lowercase := func(v any) (any, error) {
		return strings.ToLower(fmt.Sprint(v)), nil
	}

	positive := func(v any) (any, error) {
		switch n := v.(type) {
		case int:
			return n > 0, nil
		case bool:
			return n, nil
		}

		return nil, fmt.Errorf("positive: unsupported value %v", v)
	}

	toIsValid, err := mapping.NewMap("Validate", "IsValid", lowercase)
	require.NoError(t, err)

	toIsEmpty, err := mapping.NewMap("NumberOfChars", "IsEmpty", positive)
	require.NoError(t, err)

	table := mapping.Table{toIsValid, toIsEmpty}

	src := checkModel{Validate: true, NumberOfChars: 5}

	var dst viewModel
	require.NoError(t, dataobject.CopyTo(src, &dst, dataobject.OptionTable(table)))
	assert.Equal(t, viewModel{IsValid: "true", IsEmpty: true}, dst)

	assert.True(t, dataobject.IsEqualTo(src, dst, dataobject.OptionTable(table)))
}

func TestCopyToCrossClassWithoutConverterFails(t *testing.T) {
	t.Parallel()

	type left struct{ Count int }
	type right struct{ Count string }

	toString, err := mapping.NewMap("Count", "Count", nil)
	require.NoError(t, err)

	var dst right

	err = dataobject.CopyTo(left{Count: 5}, &dst, dataobject.OptionTable(mapping.Table{toString}))

	var convErr *dataobject.ConvertError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "Count", convErr.SourceName)
}

func TestCopyErrorKindsAreDistinguishable(t *testing.T) {
	t.Parallel()

	type left struct{ A int }
	type right struct{ B string }

	var dst right

	planErr := dataobject.CopyTo(left{A: 1}, &dst)
	assert.True(t, errors.Is(planErr, dataobject.ErrMissingTarget))

	ab, err := mapping.NewMap("A", "B", nil)
	require.NoError(t, err)

	execErr := dataobject.CopyTo(left{A: 1}, &dst, dataobject.OptionTable(mapping.Table{ab}))

	var convErr *dataobject.ConvertError
	assert.True(t, errors.As(execErr, &convErr))
	assert.False(t, errors.Is(execErr, dataobject.ErrMissingTarget))
}
