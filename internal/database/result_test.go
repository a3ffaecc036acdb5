package database

import (
	"encoding/json"
	"testing"
)

func TestResultMarshalJSON(t *testing.T) {
	id := [16]byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0, 0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0}

	tests := []struct {
		name string
		res  Result
		want string
	}{
		{
			name: "empty",
			res:  Result{Columns: []string{}, Rows: [][]any{}},
			want: `{"columns":[],"rows":[]}`,
		},
		{
			name: "write reports rows affected",
			res:  Result{Columns: []string{}, Rows: [][]any{}, RowsAffected: 3},
			want: `{"columns":[],"rows":[],"rows_affected":3}`,
		},
		{
			name: "uuid as byte array",
			res:  Result{Columns: []string{"id"}, Rows: [][]any{{id}}},
			want: `{"columns":["id"],"rows":[["12345678-9abc-def0-1234-56789abcdef0"]]}`,
		},
		{
			name: "uuid as byte slice",
			res:  Result{Columns: []string{"id"}, Rows: [][]any{{id[:]}}},
			want: `{"columns":["id"],"rows":[["12345678-9abc-def0-1234-56789abcdef0"]]}`,
		},
		{
			name: "bytea stays hex",
			res:  Result{Columns: []string{"blob"}, Rows: [][]any{{[]byte{0xde, 0xad, 0xbe, 0xef}}}},
			want: `{"columns":["blob"],"rows":[["\\xdeadbeef"]]}`,
		},
		{
			name: "scalars pass through",
			res:  Result{Columns: []string{"n", "s", "b", "x"}, Rows: [][]any{{int64(7), "hi", true, nil}}},
			want: `{"columns":["n","s","b","x"],"rows":[[7,"hi",true,null]]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.res)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal = %s, want %s", got, tt.want)
			}
		})
	}
}
