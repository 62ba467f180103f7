package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/erraggy/apidoc2ts/internal/testutil"
)

func TestRunSchema_File(t *testing.T) {
	clearEnv(t)
	path := testutil.WriteTempFile(t, "user.json", testutil.UserSchemaJSON)

	var out bytes.Buffer
	if err := runSchema([]string{path}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("runSchema failed: %v", err)
	}

	want := `/** A registered user. */
export interface User {
    id: number;
    role?: Role;
}

export enum Role {
    Admin = "admin",
    Member = "member",
}
`
	if out.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRunSchema_Stdin(t *testing.T) {
	clearEnv(t)

	var out bytes.Buffer
	err := runSchema([]string{"--name", "Account", "--no-comments", StdinFilePath}, strings.NewReader(testutil.UserSchemaJSON), &out)
	if err != nil {
		t.Fatalf("runSchema failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "export interface Account {\n") {
		t.Errorf("expected Account interface without comment, got:\n%s", out.String())
	}
}

func TestRunSchema_DefaultNameFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("APIDOC2TS_DEFAULT_NAME", "Body")

	var out bytes.Buffer
	err := runSchema([]string{StdinFilePath}, strings.NewReader(`{"type": "object", "properties": {"a": {"type": "string"}}}`), &out)
	if err != nil {
		t.Fatalf("runSchema failed: %v", err)
	}
	if !strings.Contains(out.String(), "export interface Body {") {
		t.Errorf("expected default name from environment, got:\n%s", out.String())
	}
}

func TestRunSchema_Errors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{name: "no argument", args: nil, want: "exactly one file path"},
		{name: "malformed", args: []string{StdinFilePath}, stdin: `{"type": `, want: "failed to parse JSON/YAML"},
		{name: "empty input", args: []string{StdinFilePath}, stdin: "  ", want: "document is empty"},
		{name: "name is custom type", args: []string{"--name", "User", "--custom-types", "User", StdinFilePath}, stdin: testutil.UserSchemaJSON, want: "custom type collision"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runSchema(tt.args, strings.NewReader(tt.stdin), &out)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %q", tt.want, err.Error())
			}
			if out.Len() != 0 {
				t.Errorf("expected no output on failure, got %q", out.String())
			}
		})
	}
}
