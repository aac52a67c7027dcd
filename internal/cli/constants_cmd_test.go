package cli_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/calvinalkan/cmn/internal/cli"
	"github.com/calvinalkan/cmn/pkg/cmn"
)

const sampleDocument = `{
	// sample
	"hash": {"algorithm": "Blake2b", "cost": 2, "hash_len": 16},
	"constants": [
		{"name": "answer", "type": "u32", "value": 42},
		{"name": "greeting", "type": "string", "value": "hello"},
		{"name": "dupes", "type": "chars", "value": ["a", "a"]},
	],
	"words": ["zeta", "alpha", "alpha"],
}`

func Test_Ls_Lists_Catalog_In_Order_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("ls")

	lines := strings.Split(stdout, "\n")
	names := cmn.CatalogNames()

	if got, want := len(lines), len(names); got != want {
		t.Fatalf("lines=%d, want=%d\n%s", got, want, stdout)
	}

	for i, line := range lines {
		fields := strings.Fields(line)
		if got, want := fields[0], names[i]; got != want {
			t.Errorf("line %d name=%q, want=%q", i, got, want)
		}
	}

	cli.AssertContains(t, stdout, "hash_cost")
	cli.AssertContains(t, stdout, "u32")
}

func Test_Ls_Json_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("ls", "--json")

	var entries []struct {
		Name  string `json:"name"`
		Type  string `json:"type"`
		Value any    `json:"value"`
	}

	err := json.Unmarshal([]byte(stdout), &entries)
	if err != nil {
		t.Fatalf("invalid json: %v\n%s", err, stdout)
	}

	if got, want := len(entries), len(cmn.CatalogNames()); got != want {
		t.Fatalf("entries=%d, want=%d", got, want)
	}

	if got, want := entries[0].Name, "e"; got != want {
		t.Errorf("first=%q, want=%q", got, want)
	}

	if got, want := entries[0].Type, "float"; got != want {
		t.Errorf("type=%q, want=%q", got, want)
	}
}

func Test_Get_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	tests := map[string]string{
		"pi":             "3.141592653589793",
		"hash_algorithm": "Blake3",
		"hash_cost":      "8",
		"hash_length":    "32",
		"speed_of_light": "2.99792458e+08",
	}

	for name, want := range tests {
		if got := c.MustRun("get", name); got != want {
			t.Errorf("get %s=%q, want=%q", name, got, want)
		}
	}
}

func Test_Get_Errors_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("get")
	cli.AssertContains(t, stderr, "constant name is required")

	stderr = c.MustFail("get", "PI")
	cli.AssertContains(t, stderr, "constant not found: PI")
}

func Test_Get_From_Data_File_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("data.json", sampleDocument)

	if got, want := c.MustRun("--data", "data.json", "get", "answer"), "42"; got != want {
		t.Errorf("get=%q, want=%q", got, want)
	}

	stderr := c.MustFail("--data", "data.json", "get", "pi")
	cli.AssertContains(t, stderr, "constant not found: pi")
}

func Test_Data_File_Rejected_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("bad.json", `{"constants": [{"name": "x", "type": "u32", "value": "nope"}]}`)

	stderr := c.MustFail("--data", "bad.json", "ls")
	cli.AssertContains(t, stderr, "bad.json: value does not match declared type")
	cli.AssertContains(t, stderr, "constant_name=x")

	stderr = c.MustFail("--data", "missing.json", "ls")
	cli.AssertContains(t, stderr, "cannot read data file")
}

func Test_Digest_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	first := c.MustRun("digest", "pi")
	if got, want := len(first), 2*cmn.DefaultHashLen; got != want {
		t.Errorf("hex len=%d, want=%d (%s)", got, want, first)
	}

	if got := c.MustRun("digest", "pi"); got != first {
		t.Errorf("digest not deterministic: %s != %s", got, first)
	}

	if got := c.MustRun("digest", "e"); got == first {
		t.Errorf("digest of e equals digest of pi: %s", got)
	}

	if got := c.MustRun("--cost", "2", "digest", "pi"); got == first {
		t.Errorf("digest ignores cost: %s", got)
	}

	short := c.MustRun("--hash-len", "8", "digest", "pi")
	if got, want := len(short), 16; got != want {
		t.Errorf("hex len=%d, want=%d", got, want)
	}
}

func Test_Valid_All_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("valid")

	for _, name := range cmn.CatalogNames() {
		cli.AssertContains(t, stdout, name+" ok")
	}

	cli.AssertNotContains(t, stdout, "invalid")
}

func Test_Valid_Reports_Problems_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("data.json", sampleDocument)

	stdout, stderr, exitCode := c.Run("--data", "data.json", "valid", "answer", "dupes", "nope")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	cli.AssertContains(t, stdout, "answer ok")
	cli.AssertContains(t, stdout, "dupes invalid")
	cli.AssertNotContains(t, stdout, "nope")

	cli.AssertContains(t, stderr, "warning: dupes: invalid")
	cli.AssertContains(t, stderr, "warning: nope: constant not found")
}

func Test_Check_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("data.json", sampleDocument)

	stdout, stderr, exitCode := c.Run("check", "data.json")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	cli.AssertContains(t, stdout, "hash=Blake2b/cost=2/len=16")
	cli.AssertContains(t, stdout, "constants=3")
	cli.AssertContains(t, stdout, "words=2")
	cli.AssertContains(t, stderr, "warning: dupes: invalid")
}

func Test_Check_Uses_Configured_Hash_Without_Hash_Block_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("plain.json", `{"constants": [{"name": "n", "type": "usize", "value": 7}]}`)

	stdout := c.MustRun("--algorithm", "argon2id", "--cost", "1", "check", "plain.json")

	cli.AssertContains(t, stdout, "hash=Argon2id/cost=1/len=32")
	cli.AssertContains(t, stdout, "words=0")
}

func Test_Check_Errors_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("check")
	cli.AssertContains(t, stderr, "file path is required")

	c.WriteFile("list.json", `[1, 2]`)
	stderr = c.MustFail("check", "list.json")
	cli.AssertContains(t, stderr, "list.json: document must be a JSON object")
}

func Test_Hash_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	first := c.MustRun("hash", "hello", "world")
	if got, want := len(first), 64; got != want {
		t.Errorf("hex len=%d, want=%d", got, want)
	}

	if got := c.MustRun("hash", "hello world"); got != first {
		t.Errorf("joined args hash=%s, want=%s", got, first)
	}

	if got := c.MustRun("hash", "--algorithm", "blake2b", "hello world"); got == first {
		t.Errorf("algorithm flag ignored: %s", got)
	}

	if got := c.MustRun("hash", "--len", "4", "hello world"); len(got) != 8 {
		t.Errorf("hex len=%d, want=8", len(got))
	}

	stderr := c.MustFail("hash")
	cli.AssertContains(t, stderr, "input text is required")

	stderr = c.MustFail("hash", "--algorithm", "crc32", "x")
	cli.AssertContains(t, stderr, "unknown hash algorithm")
}

func Test_Hash_Out_Of_Range_Length_Warns_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("hash", "--len", "100", "x")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := len(strings.TrimSpace(stdout)), 128; got != want {
		t.Errorf("hex len=%d, want=%d", got, want)
	}

	cli.AssertContains(t, stderr, "warning: hash settings Blake3/cost=8/len=100 are invalid")
}
