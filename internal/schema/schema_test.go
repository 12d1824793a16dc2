package schema_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/internal/model"
	"github.com/qaforge/qaforge/internal/render"
	"github.com/qaforge/qaforge/internal/schema"
)

func validDocument(t *testing.T) []byte {
	t.Helper()

	run := render.RunMetadata{
		Repo: "acme/contact-suite", Workflow: "ci", OS: "ubuntu-latest",
		JDK: "21", Branch: "main", Commit: "abc1234", Author: "dev",
	}
	envelope := render.NewEnvelope(run, model.Metrics{}, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	payload, err := json.Marshal(envelope)
	require.NoError(t, err)

	return payload
}

func TestValidateEnvelope_Valid(t *testing.T) {
	t.Parallel()

	result, err := schema.ValidateEnvelope(validDocument(t))
	require.NoError(t, err)
	assert.True(t, result.Valid(), "unexpected violations: %v", result.Errors())
}

func TestValidateEnvelope_MissingSection(t *testing.T) {
	t.Parallel()

	var document map[string]json.RawMessage

	require.NoError(t, json.Unmarshal(validDocument(t), &document))
	delete(document, "timeline")

	payload, err := json.Marshal(document)
	require.NoError(t, err)

	result, validateErr := schema.ValidateEnvelope(payload)
	require.NoError(t, validateErr)
	assert.False(t, result.Valid())
}

func TestValidateEnvelope_UnknownTopLevelKey(t *testing.T) {
	t.Parallel()

	var document map[string]json.RawMessage

	require.NoError(t, json.Unmarshal(validDocument(t), &document))
	document["extras"] = json.RawMessage(`{}`)

	payload, err := json.Marshal(document)
	require.NoError(t, err)

	result, validateErr := schema.ValidateEnvelope(payload)
	require.NoError(t, validateErr)
	assert.False(t, result.Valid())
}

func TestValidateEnvelope_BadStageStatus(t *testing.T) {
	t.Parallel()

	var envelope map[string]any

	require.NoError(t, json.Unmarshal(validDocument(t), &envelope))

	stages, ok := envelope["timeline"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, stages)

	stage, ok := stages[0].(map[string]any)
	require.True(t, ok)
	stage["status"] = "maybe"

	payload, err := json.Marshal(envelope)
	require.NoError(t, err)

	result, validateErr := schema.ValidateEnvelope(payload)
	require.NoError(t, validateErr)
	assert.False(t, result.Valid())
}

func TestValidateEnvelope_MalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := schema.ValidateEnvelope([]byte("{not json"))
	assert.Error(t, err)
}
