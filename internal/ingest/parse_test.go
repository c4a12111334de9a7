package ingest

import (
	"errors"
	"math"
	"testing"

	"github.com/daryltucker/euroeval-report/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metricNames(total model.Total) []string {
	names := make([]string, len(total))
	for i, m := range total {
		names[i] = m.Name
	}
	return names
}

func TestParseLine_SingleConfiguration(t *testing.T) {
	line := `{"model":"TurkuNLP/bert-base-finnish-cased-v1","dataset":"scala-fi","task":"linguistic-acceptability",` +
		`"dataset_languages":["fi"],"num_model_parameters":124000000,` +
		`"results":{"raw":[{"test_mcc":60.1,"test_macro_f1":70.2}],"total":{"test_mcc":60.1,"test_mcc_se":1.2,"test_macro_f1":70.2,"test_macro_f1_se":0.8}}}`

	rec, err := ParseLine([]byte(line))
	require.NoError(t, err)

	assert.Equal(t, "TurkuNLP/bert-base-finnish-cased-v1", rec.Model)
	assert.Equal(t, "bert-base-finnish-cased-v1", rec.DisplayName())
	assert.Equal(t, "scala-fi", rec.Dataset)
	assert.Equal(t, "linguistic-acceptability", rec.Task)
	assert.Equal(t, "fi", rec.PrimaryLanguage())
	require.NotNil(t, rec.NumParameters)
	assert.Equal(t, 124000000.0, *rec.NumParameters)

	require.Equal(t, model.ResultsSingle, rec.Results.Kind)
	require.NotNil(t, rec.Results.Single)
	assert.Len(t, rec.Results.Single.Raw, 1)
	assert.Equal(t, []string{"test_mcc", "test_mcc_se", "test_macro_f1", "test_macro_f1_se"}, metricNames(rec.Results.Total()))
}

func TestParseLine_KeepsTotalKeyOrder(t *testing.T) {
	line := `{"model":"m","dataset":"d","results":{"total":{"test_micro_f1":1,"test_em":2,"test_f1":3}}}`

	rec, err := ParseLine([]byte(line))
	require.NoError(t, err)
	assert.Equal(t, []string{"test_micro_f1", "test_em", "test_f1"}, metricNames(rec.Results.Total()))
}

func TestParseLine_MultiConfiguration(t *testing.T) {
	line := `{"model":"m","dataset":"d","dataset_languages":["sv","fi"],"results":{` +
		`"5e-5":{"raw":[],"total":{"test_f1":72}},` +
		`"1e-5":{"raw":[],"total":{"test_f1":70}}}}`

	rec, err := ParseLine([]byte(line))
	require.NoError(t, err)

	require.Equal(t, model.ResultsMulti, rec.Results.Kind)
	require.Len(t, rec.Results.Configs, 2)
	assert.Equal(t, "5e-5", rec.Results.Configs[0].ID)
	assert.Equal(t, "1e-5", rec.Results.Configs[1].ID)
	assert.Equal(t, "sv", rec.PrimaryLanguage())

	m, ok := rec.Results.Total().Lookup("test_f1")
	require.True(t, ok)
	assert.Equal(t, 72.0, *m.Value, "multi-config total is the first configuration")
}

func TestParseLine_EmptyResultsIsSingleWithNoMetrics(t *testing.T) {
	rec, err := ParseLine([]byte(`{"model":"m","dataset":"d","results":{"total":{}}}`))
	require.NoError(t, err)
	assert.Equal(t, model.ResultsSingle, rec.Results.Kind)
	assert.Empty(t, rec.Results.Total())

	rec, err = ParseLine([]byte(`{"model":"m","dataset":"d","results":{}}`))
	require.NoError(t, err)
	assert.Equal(t, model.ResultsSingle, rec.Results.Kind)
	assert.Empty(t, rec.Results.Total())
}

func TestParseLine_PythonNonFiniteLiterals(t *testing.T) {
	line := `{"model":"m NaN","dataset":"d","results":{"total":{"test_f1":80.0,"test_f1_se":NaN,"test_em":-Infinity,"test_mcc":null}}}`

	rec, err := ParseLine([]byte(line))
	require.NoError(t, err)
	assert.Equal(t, "m NaN", rec.Model, "string contents are left alone")

	total := rec.Results.Total()
	se, _ := total.Lookup("test_f1_se")
	require.NotNil(t, se.Value)
	assert.True(t, math.IsNaN(*se.Value))

	em, _ := total.Lookup("test_em")
	assert.True(t, math.IsInf(*em.Value, -1))

	mcc, _ := total.Lookup("test_mcc")
	assert.Nil(t, mcc.Value)
}

func TestParseLine_NonNumericParameterCountIsAbsent(t *testing.T) {
	rec, err := ParseLine([]byte(`{"model":"m","dataset":"d","num_model_parameters":"unknown","results":{}}`))
	require.NoError(t, err)
	assert.Nil(t, rec.NumParameters)

	rec, err = ParseLine([]byte(`{"model":"m","dataset":"d","results":{}}`))
	require.NoError(t, err)
	assert.Nil(t, rec.NumParameters)
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"not json", `{"model": "m", `},
		{"missing model", `{"dataset":"d","results":{}}`},
		{"model not a string", `{"model":3,"dataset":"d","results":{}}`},
		{"languages not strings", `{"model":"m","dataset":"d","dataset_languages":[1],"results":{}}`},
		{"results not an object", `{"model":"m","dataset":"d","results":[]}`},
		{"configuration not an object", `{"model":"m","dataset":"d","results":{"1e-5":3}}`},
		{"metric value not a number", `{"model":"m","dataset":"d","results":{"total":{"test_f1":"high"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine([]byte(tt.line))
			require.Error(t, err)
			var pe *ParseError
			assert.True(t, errors.As(err, &pe))
		})
	}
}

func TestQuoteNonFinite_LeavesEscapedQuotesAlone(t *testing.T) {
	in := `{"a":"x\"NaN","b":NaN}`
	assert.Equal(t, `{"a":"x\"NaN","b":"NaN"}`, string(quoteNonFinite([]byte(in))))
}
