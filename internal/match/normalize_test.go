package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"Lorem", "lorem"},
		{"GenLorem", "genlorem"},
		{"gen_lorem", "genlorem"},
		{"gen-lorem", "genlorem"},
		{"HTTPClient", "httpclient"},
		{"httpClient", "httpclient"},
		{"lorem.Ipsum", "loremipsum"},
		{"", ""},
		{"ID", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"RecordID", []string{"record", "id"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"setter_name", []string{"setter", "name"}},
		{"Pair2", []string{"pair2"}},
		{"__", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, TokenizeIdent(tt.input))
		})
	}
}
