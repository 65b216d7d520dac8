package selection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Valid(t *testing.T) {
	tests := []struct {
		name    string
		columns string
		want    []string
	}{
		{"default", DefaultColumns, []string{TotalReflection, TotalTransmission, Absorption}},
		{"reordered", "t,a,r", []string{TotalReflection, TotalTransmission, Absorption}},
		{"long names", "reflection,absorption", []string{TotalReflection, Absorption}},
		{"subset", "r,a", []string{TotalReflection, Absorption}},
		{"alias collapse", "reflection,r", []string{TotalReflection}},
		{"mixed collapse", "a,absorption,t,transmission", []string{TotalTransmission, Absorption}},
		{"single", "transmission", []string{TotalTransmission}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := Resolve(tt.columns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sel.Names())
			assert.Len(t, sel, len(tt.want))
		})
	}
}

func TestResolve_SubsetExcludesUnselected(t *testing.T) {
	sel, err := Resolve("r,a")
	require.NoError(t, err)
	assert.True(t, sel.Contains(TotalReflection))
	assert.True(t, sel.Contains(Absorption))
	assert.False(t, sel.Contains(TotalTransmission))
}

func TestResolve_OrderIndependent(t *testing.T) {
	first, err := Resolve("r,t,a")
	require.NoError(t, err)
	second, err := Resolve("t,a,r")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolve_ReportsEveryInvalidToken(t *testing.T) {
	tests := []struct {
		name        string
		columns     string
		wantInvalid []string
	}{
		{"one bad", "r,x", []string{"x"}},
		{"several bad", "q,r,z,Reflection", []string{"q", "z", "Reflection"}},
		{"trailing comma", "r,t,", []string{""}},
		{"empty input", "", []string{""}},
		{"padded token", "r, t", []string{" t"}},
		{"upper case", "R,A", []string{"R", "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := Resolve(tt.columns)
			assert.Nil(t, sel, "no partial selection")

			var selErr *InvalidSelectionError
			require.True(t, errors.As(err, &selErr), "got %T", err)
			assert.Equal(t, tt.wantInvalid, selErr.Invalid)
			assert.Equal(t, ValidAliases(), selErr.Valid)
			for _, token := range tt.wantInvalid {
				assert.Contains(t, err.Error(), `"`+token+`"`)
			}
		})
	}
}

func TestInvalidSelectionError_Message(t *testing.T) {
	_, err := Resolve("x,,y")
	require.Error(t, err)
	assert.Equal(t,
		`invalid columns: ["x", "", "y"]. Choose from: a, absorption, r, reflection, t, transmission`,
		err.Error())
}

func TestLookup(t *testing.T) {
	name, ok := Lookup("t")
	assert.True(t, ok)
	assert.Equal(t, TotalTransmission, name)

	_, ok = Lookup("Total_Transmission")
	assert.False(t, ok, "canonical names are not aliases")
}

func TestValidAliases(t *testing.T) {
	assert.Equal(t, []string{"a", "absorption", "r", "reflection", "t", "transmission"}, ValidAliases())
}
