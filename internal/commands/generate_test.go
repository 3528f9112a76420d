// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jabberwockkie/hive-json-schema/internal/config"
	"github.com/jabberwockkie/hive-json-schema/internal/hive"
)

const keyedExample = `{
	"KeyedResponse": {
		"TPSSourceRecord": {"source": "sys-a"},
		"ApplicationData": {"app": "demo"},
		"keyData": {"id": "k1"},
		"Response": {"Status": "ok", "Count": 2}
	}
}`

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func TestGenerate_JSONEndToEnd(t *testing.T) {
	input := writeInput(t, "example.json", keyedExample)
	output := filepath.Join(t.TempDir(), "schema.hql")

	err := runCLI(t, "generate", "-i", input, "-o", output, "--table-name", "events")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	want := "CREATE EXTERNAL TABLE events (\n" +
		"\tapplicationdata struct<app:string>\n" +
		"\t,keydata struct<id:string>\n" +
		"\t,response struct<Status:string, Count:int>\n" +
		"\t,tpssourcerecord struct<source:string>\n" +
		")\n" +
		"COMMENT 'Auto Generated Schema, Put Table description here'\n" +
		"PARTITIONED BY (CYCLE_NUMBER INT)\n" +
		"ROW FORMAT SERDE 'org.apache.hive.hcatalog.data.JsonSerDe';\n" +
		"CREATE VIEW view_name AS SELECT\n" +
		"\tapplicationdata.app AS applicationdata_app\n" +
		"\t,keydata.id AS keydata_id\n" +
		"\t,response.count AS response_count\n" +
		"\t,response.status AS response_status\n" +
		"\t,tpssourcerecord.source AS tpssourcerecord_source\n" +
		"FROM events \n"
	assert.Equal(t, want, string(data))
}

func TestGenerate_XMLEndToEnd(t *testing.T) {
	input := writeInput(t, "feed.xml",
		`<KeyedResponse><keyData><id>k1</id></keyData><Response><Status>ok</Status></Response></KeyedResponse>`)
	output := filepath.Join(t.TempDir(), "schema.hql")

	err := runCLI(t, "generate", "-i", input, "-o", output, "--input-type", "xml")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "CREATE EXTERNAL TABLE hive_table (")
	assert.Contains(t, text, "ROW FORMAT SERDE 'com.ibm.spss.hive.serde2.xml.XmlSerDe'")
	// Bookkeeping subtrees get serde entries whether present or not.
	assert.Contains(t, text, `"column.xpath.tpssourcerecord"="KeyedResponse/TPSSourceRecord"`)
	assert.Contains(t, text, `"column.xpath.applicationdata"="KeyedResponse/ApplicationData"`)
	assert.Contains(t, text, `"column.xpath.keydata"="KeyedResponse/keyData"`)
	assert.Contains(t, text, `"xmlinput.start"="<KeyedResponse"`)
	assert.Contains(t, text, `"xmlinput.end"="</KeyedResponse>"`)
}

func TestGenerate_SkipKeyedResponse(t *testing.T) {
	input := writeInput(t, "plain.json", `{"Response": {"a": 1}}`)
	output := filepath.Join(t.TempDir(), "schema.hql")

	err := runCLI(t, "generate", "-i", input, "-o", output, "--skip-keyed-response")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\tresponse struct<a:int>\n")
	assert.NotContains(t, string(data), "keydata")
}

func TestGenerate_TypePathsAndFilter(t *testing.T) {
	input := writeInput(t, "example.json", `{
		"KeyedResponse": {
			"Response": {
				"Data": {
					"Items": [{"id": "a", "qty": 1}, {"id": "b", "qty": 2}]
				}
			}
		}
	}`)
	output := filepath.Join(t.TempDir(), "schema.hql")

	err := runCLI(t, "generate", "-i", input, "-o", output,
		"--type-paths", "Response, Data/Items@id:b")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "data_items_b struct<id:string, qty:int>")
}

func TestGenerate_EmptyArrayLeavesNoOutput(t *testing.T) {
	input := writeInput(t, "example.json", `{
		"KeyedResponse": {"Response": {"rows": []}}
	}`)
	output := filepath.Join(t.TempDir(), "schema.hql")

	err := runCLI(t, "generate", "-i", input, "-o", output)
	require.Error(t, err)
	assert.ErrorIs(t, err, hive.ErrEmptyArray)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "no output file may be written on failure")
}

func TestGenerate_FilterNoMatchFails(t *testing.T) {
	input := writeInput(t, "example.json", `{
		"KeyedResponse": {"Response": {"Data": {"Items": [{"id": "a"}]}}}
	}`)
	output := filepath.Join(t.TempDir(), "schema.hql")

	err := runCLI(t, "generate", "-i", input, "-o", output,
		"--type-paths", "Response,Data/Items@id:zzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no array element matches filter")
}

func TestGenerate_JSONSchemaEmission(t *testing.T) {
	input := writeInput(t, "example.json", keyedExample)
	dir := t.TempDir()
	output := filepath.Join(dir, "schema.hql")
	schemaOut := filepath.Join(dir, "schema.json")

	err := runCLI(t, "generate", "-i", input, "-o", output, "--json-schema", schemaOut)
	require.NoError(t, err)

	data, err := os.ReadFile(schemaOut)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `"$schema"`)
	assert.Contains(t, text, `"keyData"`)
	assert.Contains(t, text, `"Response"`)
}

func TestGenerate_InvalidInputType(t *testing.T) {
	input := writeInput(t, "example.json", keyedExample)
	output := filepath.Join(t.TempDir(), "schema.hql")

	err := runCLI(t, "generate", "-i", input, "-o", output, "--input-type", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input type")
}

func TestGenerate_NonInteractiveRequiresFiles(t *testing.T) {
	err := runCLI(t, "generate", "--non-interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--input and --output")
}

func TestGenerate_TableNameFromConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg := config.Config{Version: 1, TableName: "configured"}
	require.NoError(t, cfg.Save(filepath.Join(dir, config.FileName)))

	input := filepath.Join(dir, "example.json")
	require.NoError(t, os.WriteFile(input, []byte(keyedExample), 0o600))
	output := filepath.Join(dir, "schema.hql")

	err := runCLI(t, "generate", "-i", input, "-o", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CREATE EXTERNAL TABLE configured (")

	// An explicit flag still wins over the config file.
	err = runCLI(t, "generate", "-i", input, "-o", output, "--table-name", "flagged")
	require.NoError(t, err)

	data, err = os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CREATE EXTERNAL TABLE flagged (")
}

func TestParseInputType(t *testing.T) {
	tests := []struct {
		in      string
		want    hive.Serde
		wantErr bool
	}{
		{"JSON", hive.SerdeJSON, false},
		{"json", hive.SerdeJSON, false},
		{"", hive.SerdeJSON, false},
		{"XML", hive.SerdeXML, false},
		{" xml ", hive.SerdeXML, false},
		{"yaml", 0, true},
	}
	for _, tt := range tests {
		got, err := parseInputType(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
