// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The hive-json-schema Authors

package hive

import (
	"sort"
	"strings"

	"github.com/jabberwockkie/hive-json-schema/internal/document"
)

// Serde selects the storage clause emitted with the table DDL.
type Serde int

const (
	SerdeJSON Serde = iota
	SerdeXML
)

const (
	jsonSerdeClause = "ROW FORMAT SERDE 'org.apache.hive.hcatalog.data.JsonSerDe';"
	xmlSerdeRow     = "ROW FORMAT SERDE 'com.ibm.spss.hive.serde2.xml.XmlSerDe'"
	xmlInputFormat  = "INPUTFORMAT 'com.ibm.spss.hive.serde2.xml.XmlInputFormat'"
	xmlOutputFormat = "OUTPUTFORMAT 'org.apache.hadoop.hive.ql.io.IgnoreKeyTextOutputFormat'"

	tableComment = "COMMENT 'Auto Generated Schema, Put Table description here'"
	partitionBy  = "PARTITIONED BY (CYCLE_NUMBER INT)"
)

// Generator renders DDL for one inferred document. Each run owns its own
// Generator; nothing here is shared or reused.
type Generator struct {
	// TableName names the external table and the view's FROM target.
	TableName string
	// Serde picks the JSON or XML storage clause.
	Serde Serde
	// XMLRoot is the element name for the xmlinput.start/end markers.
	// Only consulted when Serde is SerdeXML.
	XMLRoot string
	// XPaths are the column.xpath serde properties, kept in the order
	// they were recorded.
	XPaths []XPathEntry
}

// Schema renders the CREATE EXTERNAL TABLE statement for a top-level
// object. Columns are sorted by their full rendered line, so ties on the
// name fall back to the type text.
func (g *Generator) Schema(doc *document.Value) (string, error) {
	lines := make([]string, 0, doc.Len())
	for _, key := range doc.Keys() {
		val, _ := doc.Field(key)
		typ, err := renderType(val, key)
		if err != nil {
			return "", err
		}
		lines = append(lines, columnName(key)+" "+typ)
	}
	sort.Strings(lines)

	var sb strings.Builder
	sb.WriteString("CREATE EXTERNAL TABLE ")
	sb.WriteString(g.TableName)
	sb.WriteString(" (\n")
	writeLines(&sb, lines)
	sb.WriteString(")\n")
	sb.WriteString(tableComment)
	sb.WriteString("\n")
	sb.WriteString(partitionBy)
	sb.WriteString("\n")
	sb.WriteString(g.serdeClause())
	return sb.String(), nil
}

func (g *Generator) serdeClause() string {
	if g.Serde != SerdeXML {
		return jsonSerdeClause
	}

	lines := make([]string, 0, len(g.XPaths))
	for _, e := range g.XPaths {
		if s := e.String(); s != "" {
			lines = append(lines, s)
		}
	}

	var sb strings.Builder
	sb.WriteString(xmlSerdeRow)
	sb.WriteString("\nWITH SERDEPROPERTIES (\n")
	writeLines(&sb, lines)
	sb.WriteString(")\nSTORED AS\n")
	sb.WriteString(xmlInputFormat)
	sb.WriteString("\n")
	sb.WriteString(xmlOutputFormat)
	sb.WriteString("\nTBLPROPERTIES (\n")
	sb.WriteString("\t\"xmlinput.start\"=\"<" + g.XMLRoot + "\",\n")
	sb.WriteString("\t\"xmlinput.end\"=\"</" + g.XMLRoot + ">\"\n);")
	return sb.String()
}

// writeLines joins lines in the DDL body style: every line is tab-indented
// and terminated, and every line after the first leads with a comma.
func writeLines(sb *strings.Builder, lines []string) {
	for i, line := range lines {
		if i == 0 {
			sb.WriteString("\t")
		} else {
			sb.WriteString("\t,")
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}
