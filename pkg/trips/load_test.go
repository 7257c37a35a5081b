package trips

import (
	"strings"
	"testing"

	"github.com/sampottinger/bart-berkeley-sketching-example-sam/pkg/errors"
)

func TestRead(t *testing.T) {
	input := "name,code,count\ntest,te,\"1,234\"\n"

	records, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}

	got := records[0]
	if got.Name != "test" {
		t.Errorf("Name = %q, want %q", got.Name, "test")
	}
	if got.Code != "te" {
		t.Errorf("Code = %q, want %q", got.Code, "te")
	}
	if got.Count != 1234 {
		t.Errorf("Count = %d, want 1234", got.Count)
	}
}

func TestReadSortsAscendingByCount(t *testing.T) {
	input := "name,code,count\n" +
		"Fremont,FM,500\n" +
		"Ashby,AS,100\n" +
		"MacArthur,MA,300\n"

	records, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	want := []int{100, 300, 500}
	for i, w := range want {
		if records[i].Count != w {
			t.Errorf("records[%d].Count = %d, want %d", i, records[i].Count, w)
		}
	}
}

func TestReadStableOnTies(t *testing.T) {
	input := "name,code,count\n" +
		"First,FI,200\n" +
		"Second,SE,200\n" +
		"Third,TH,100\n"

	records, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	wantNames := []string{"Third", "First", "Second"}
	for i, w := range wantNames {
		if records[i].Name != w {
			t.Errorf("records[%d].Name = %q, want %q", i, records[i].Name, w)
		}
	}
}

func TestReadCountFormats(t *testing.T) {
	tests := []struct {
		name  string
		count string
		want  int
	}{
		{name: "plain", count: "42", want: 42},
		{name: "zero", count: "0", want: 0},
		{name: "comma grouping", count: "\"1,234,567\"", want: 1234567},
		{name: "space grouping", count: "\"1 234\"", want: 1234},
		{name: "underscore grouping", count: "1_234", want: 1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "name,code,count\ntest,te," + tt.count + "\n"
			records, err := Read(strings.NewReader(input))
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if records[0].Count != tt.want {
				t.Errorf("Count = %d, want %d", records[0].Count, tt.want)
			}
		})
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{
			name:  "non-numeric count",
			input: "name,code,count\ntest,te,abc\n",
			code:  errors.ErrCodeMalformedRecord,
		},
		{
			name:  "negative count",
			input: "name,code,count\ntest,te,-5\n",
			code:  errors.ErrCodeMalformedRecord,
		},
		{
			name:  "missing count column",
			input: "name,code\ntest,te\n",
			code:  errors.ErrCodeMissingField,
		},
		{
			name:  "empty name field",
			input: "name,code,count\n,te,100\n",
			code:  errors.ErrCodeMissingField,
		},
		{
			name:  "no data rows",
			input: "name,code,count\n",
			code:  errors.ErrCodeEmptyDataset,
		},
		{
			name:  "empty input",
			input: "",
			code:  errors.ErrCodeEmptyDataset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Read() error = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestMaxCount(t *testing.T) {
	records := []Station{
		{Name: "a", Code: "aa", Count: 100},
		{Name: "b", Code: "bb", Count: 300},
		{Name: "c", Code: "cc", Count: 200},
	}
	if got := MaxCount(records); got != 300 {
		t.Errorf("MaxCount() = %d, want 300", got)
	}
	if got := MaxCount(nil); got != 0 {
		t.Errorf("MaxCount(nil) = %d, want 0", got)
	}
}

func TestWriteJSON(t *testing.T) {
	records := []Station{{Name: "Ashby", Code: "AS", Count: 100}}

	var buf strings.Builder
	if err := WriteJSON(records, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"name": "Ashby"`, `"code": "AS"`, `"count": 100`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
