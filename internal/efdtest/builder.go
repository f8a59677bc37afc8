// Package efdtest builds well-formed ledger text for tests.
package efdtest

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/efd-contribuicoes/internal/schema"
)

// Tax IDs of the two establishments of Sample.
const (
	HeadOffice = "11111111000191"
	Branch     = "22222222000191"
)

type entry struct {
	recordType string
	values     map[string]string
}

// Builder accumulates records and renders them with every counter
// (X990, 9900, 9990, 9999) computed.
type Builder struct {
	registry *schema.Registry
	entries  []entry
}

// NewBuilder returns an empty builder over the default registry.
func NewBuilder() *Builder {
	return &Builder{registry: schema.Default()}
}

// Add appends a record. kv alternates field names and values; fields not
// named are left empty. Counters of X990 records are filled by Text.
func (b *Builder) Add(recordType string, kv ...string) *Builder {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("efdtest: odd key/value list for %s", recordType))
	}
	values := make(map[string]string, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		values[kv[i]] = kv[i+1]
	}
	b.entries = append(b.entries, entry{recordType: recordType, values: values})
	return b
}

// Lines renders the records, followed by a generated block 9.
func (b *Builder) Lines() []string {
	blockCount := make(map[string]int)
	typeCount := make(map[string]int)
	var typeOrder []string
	for _, e := range b.entries {
		blockCount[schema.Block(e.recordType)]++
		if typeCount[e.recordType] == 0 {
			typeOrder = append(typeOrder, e.recordType)
		}
		typeCount[e.recordType]++
	}

	var lines []string
	for _, e := range b.entries {
		values := e.values
		if strings.HasSuffix(e.recordType, "990") {
			values = copyWith(values, "QTD_LIN_"+schema.Block(e.recordType), fmt.Sprint(blockCount[schema.Block(e.recordType)]))
		}
		lines = append(lines, b.render(e.recordType, values))
	}

	closing := append(typeOrder, "9001", "9900", "9990", "9999")
	typeCount["9001"] = 1
	typeCount["9900"] = len(closing)
	typeCount["9990"] = 1
	typeCount["9999"] = 1
	block9 := 1 + len(closing) + 2

	lines = append(lines, b.render("9001", map[string]string{"IND_MOV": "0"}))
	for _, t := range closing {
		lines = append(lines, b.render("9900", map[string]string{"REG_BLC": t, "QTD_REG_BLC": fmt.Sprint(typeCount[t])}))
	}
	lines = append(lines, b.render("9990", map[string]string{"QTD_LIN_9": fmt.Sprint(block9)}))
	lines = append(lines, b.render("9999", map[string]string{"QTD_LIN": fmt.Sprint(len(b.entries) + block9)}))

	return lines
}

// Text renders the ledger with "\n" line endings and a trailing newline.
func (b *Builder) Text() string {
	return strings.Join(b.Lines(), "\n") + "\n"
}

func (b *Builder) render(recordType string, values map[string]string) string {
	fields := b.registry.Fields(recordType)
	if fields == nil {
		panic(fmt.Sprintf("efdtest: unknown record type %s", recordType))
	}
	out := make([]string, len(fields))
	for i, f := range fields {
		if f == "REG" {
			out[i] = recordType
			continue
		}
		out[i] = values[f]
	}
	return "|" + strings.Join(out, "|") + "|"
}

func copyWith(m map[string]string, k, v string) map[string]string {
	c := make(map[string]string, len(m)+1)
	for key, val := range m {
		c[key] = val
	}
	c[k] = v
	return c
}

// Sample returns a ledger with two establishments. Block C holds one inbound
// document of HeadOffice (participant P001, item ITEM01) and one outbound
// document of Branch (participant P002, item ITEM02). Every other
// establishment block is empty.
func Sample() *Builder {
	return NewBuilder().
		Add("0000", "COD_VER", "006", "TIPO_ESCRIT", "0", "DT_INI", "01012024", "DT_FIN", "31012024", "NOME", "EMPRESA TESTE LTDA", "CNPJ", HeadOffice, "UF", "SP", "COD_MUN", "3550308", "IND_NAT_PJ", "00", "IND_ATIV", "0").
		Add("0001", "IND_MOV", "0").
		Add("0140", "COD_EST", "1", "NOME", "MATRIZ", "CNPJ", HeadOffice, "UF", "SP").
		Add("0140", "COD_EST", "2", "NOME", "FILIAL", "CNPJ", Branch, "UF", "RJ").
		Add("0150", "COD_PART", "P001", "NOME", "FORNECEDOR UM", "COD_PAIS", "01058").
		Add("0150", "COD_PART", "P002", "NOME", "CLIENTE DOIS", "COD_PAIS", "01058").
		Add("0200", "COD_ITEM", "ITEM01", "DESCR_ITEM", "PRODUTO UM", "UNID_INV", "UN", "TP_ITEM", "00").
		Add("0200", "COD_ITEM", "ITEM02", "DESCR_ITEM", "PRODUTO DOIS", "UNID_INV", "UN", "TP_ITEM", "00").
		Add("0990").
		Add("A001", "IND_MOV", "1").
		Add("A990").
		Add("C001", "IND_MOV", "0").
		Add("C010", "CNPJ", HeadOffice, "IND_ESCRI", "2").
		Add("C100", "IND_OPER", "0", "IND_EMIT", "1", "COD_PART", "P001", "COD_MOD", "55", "COD_SIT", "00", "NUM_DOC", "1001", "VL_DOC", "100,00").
		Add("C170", "NUM_ITEM", "1", "COD_ITEM", "ITEM01", "QTD", "1", "UNID", "UN", "VL_ITEM", "100,00", "CFOP", "1102", "VL_ICMS", "18,00", "CST_PIS", "50", "VL_BC_PIS", "100,00", "ALIQ_PIS", "1,65", "VL_PIS", "1,65", "CST_COFINS", "50", "VL_BC_COFINS", "100,00", "ALIQ_COFINS", "7,60", "VL_COFINS", "7,60").
		Add("C010", "CNPJ", Branch, "IND_ESCRI", "2").
		Add("C100", "IND_OPER", "1", "IND_EMIT", "0", "COD_PART", "P002", "COD_MOD", "55", "COD_SIT", "00", "NUM_DOC", "2001", "VL_DOC", "200,00").
		Add("C170", "NUM_ITEM", "1", "COD_ITEM", "ITEM02", "QTD", "2", "UNID", "UN", "VL_ITEM", "200,00", "CFOP", "5102", "VL_ICMS", "36,00", "CST_PIS", "01", "VL_BC_PIS", "200,00", "ALIQ_PIS", "1,65", "VL_PIS", "3,30", "CST_COFINS", "01", "VL_BC_COFINS", "200,00", "ALIQ_COFINS", "7,60", "VL_COFINS", "15,20").
		Add("C990").
		Add("D001", "IND_MOV", "1").
		Add("D990").
		Add("F001", "IND_MOV", "1").
		Add("F990").
		Add("I001", "IND_MOV", "1").
		Add("I990").
		Add("M001", "IND_MOV", "0").
		Add("M200", "VL_TOT_CONT_NC_PER", "3,30", "VL_TOT_CRED_DESC", "1,65", "VL_CONT_NC_REC", "1,65", "VL_TOT_CONT_REC", "1,65").
		Add("M600", "VL_TOT_CONT_NC_PER", "15,20", "VL_TOT_CRED_DESC", "7,60", "VL_CONT_NC_REC", "7,60", "VL_TOT_CONT_REC", "7,60").
		Add("M990").
		Add("P001", "IND_MOV", "1").
		Add("P990").
		Add("1001", "IND_MOV", "1").
		Add("1990")
}
