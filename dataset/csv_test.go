package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vdobler/spread/stat"
)

const station = `datetime,BETR801,model,FR04014
2019-05-07 01:00:00,50.5,45.0,25.0
2019-05-07 02:00:00,45.0,,27.7
2019-05-07 03:00:00,NaN,40.1,50.4
2019-05-07 04:00:00,33.5,30.5,61.9
2019-05-07 05:00:00,21.5,25.0,72.4
`

func TestReadCSV(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewLoader(zap.New(core), nil)

	pair, err := l.ReadCSV(strings.NewReader(station))
	require.NoError(t, err)
	assert.Equal(t, []float64{50.5, 33.5, 21.5}, pair.Observed)
	assert.Equal(t, []float64{45.0, 30.5, 25.0}, pair.Modelled)

	entries := logs.FilterMessage("dropped rows with missing values").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 2, entries[0].ContextMap()["dropped"])
	assert.EqualValues(t, 3, entries[0].ContextMap()["kept"])
}

func TestReadCSVColumns(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		obs, mod []float64
	}{
		{
			name: "named",
			opts: Options{IndexColumn: true, Observed: "FR04014", Modelled: "BETR801"},
			obs:  []float64{25.0, 27.7, 61.9, 72.4},
			mod:  []float64{50.5, 45.0, 33.5, 21.5},
		},
		{
			name: "named modelled only",
			opts: Options{IndexColumn: true, Modelled: "FR04014"},
			obs:  []float64{50.5, 45.0, 33.5, 21.5},
			mod:  []float64{25.0, 27.7, 61.9, 72.4},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := tc.opts
			opts.NaNValues = DefaultOptions().NaNValues
			pair, err := NewLoader(nil, &opts).ReadCSV(strings.NewReader(station))
			require.NoError(t, err)
			assert.Equal(t, tc.obs, pair.Observed)
			assert.Equal(t, tc.mod, pair.Modelled)
		})
	}
}

func TestReadCSVNoIndex(t *testing.T) {
	data := "obs;mod\n1;2\n2;3.5\n3;4\n"
	opts := DefaultOptions()
	opts.IndexColumn = false
	opts.Delimiter = ';'

	pair, err := NewLoader(nil, opts).ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, pair.Observed)
	assert.Equal(t, []float64{2, 3.5, 4}, pair.Modelled)
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		opts *Options
		want error
	}{
		{"one data column", "date,obs\n2020-01-01,1\n", nil, ErrMissingColumn},
		{"unknown column", station, &Options{IndexColumn: true, Observed: "PM10"}, ErrMissingColumn},
		{"index is not data", station, &Options{IndexColumn: true, Observed: "datetime"}, ErrMissingColumn},
		{"typo in observed", "date,obs,mod\n2020-01-01,1,2\n2020-01-02,2x,3\n", nil, ErrNotNumeric},
		{"text in modelled", "date,obs,mod\n2020-01-01,1,n/a\n2020-01-02,2,3\n", nil, ErrNotNumeric},
		{"infinite", "date,obs,mod\n2020-01-01,1,2\n2020-01-02,Inf,3\n", nil, ErrNotNumeric},
		{"empty cell not missing", "date,obs,mod\n2020-01-01,1,\n2020-01-02,2,3\n", &Options{IndexColumn: true}, ErrNotNumeric},
		{"all missing", "date,obs,mod\n2020-01-01,1,NA\n2020-01-02,NA,2\n", nil, stat.ErrInsufficientData},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader(nil, tc.opts).ReadCSV(strings.NewReader(tc.data))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadCSV(t *testing.T) {
	file := filepath.Join(t.TempDir(), "no2.csv")
	require.NoError(t, os.WriteFile(file, []byte(station), 0o644))

	pair, err := NewLoader(zap.NewNop(), nil).LoadCSV(file)
	require.NoError(t, err)
	assert.Equal(t, 3, pair.Len())

	_, err = NewLoader(nil, nil).LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
