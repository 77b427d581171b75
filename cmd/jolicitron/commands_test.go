package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scott-cotton/cli"
)

type buffer struct {
	bytes.Buffer
}

func (*buffer) Close() error { return nil }

func testContext() (*cli.Context, *buffer, *buffer) {
	out, errOut := &buffer{}, &buffer{}
	cc := &cli.Context{
		In:  io.NopCloser(strings.NewReader("")),
		Out: out,
		Err: errOut,
		Go:  context.Background(),
	}
	return cc, out, errOut
}

func pizzaFile(name string) string {
	return filepath.Join("..", "..", "testdata", "pizza", name)
}

func TestMainRequiresFlags(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"-input", pizzaFile("input.txt")},
		{"-input", pizzaFile("input.txt"), "-schema", pizzaFile("schema.json")},
	} {
		cc, out, _ := testContext()
		err := MainCommand().Run(cc, args)
		if !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%v: expected usage error, got %v", args, err)
		}
		if out.Len() != 0 {
			t.Errorf("%v: unexpected output %q", args, out.String())
		}
	}
}

func TestMainWritesOutput(t *testing.T) {
	cc, out, _ := testContext()
	err := MainCommand().Run(cc, []string{
		"-input", pizzaFile("input.txt"),
		"-schema", pizzaFile("schema.json"),
		"-output", "-",
	})
	if err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile(pizzaFile("output.json"))
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != string(want) {
		t.Errorf("got\n%s\nwant\n%s", out.String(), want)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	cc, _, _ = testContext()
	err = MainCommand().Run(cc, []string{
		"-i", pizzaFile("input.txt"),
		"-s", pizzaFile("schema.json"),
		"-o", path,
	})
	if err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(d), "nrows: 3") {
		t.Errorf("expected yaml output, got\n%s", d)
	}
}

func TestMainReportsErrors(t *testing.T) {
	cc, out, errOut := testContext()
	err := MainCommand().Run(cc, []string{
		"-input", pizzaFile("input.txt"),
		"-schema", pizzaFile("input.txt"),
		"-output", "-",
	})
	var xc cli.ExitCodeErr
	if !errors.As(err, &xc) || xc != 1 {
		t.Fatalf("expected exit code 1, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
	if !strings.HasPrefix(errOut.String(), "error: ") {
		t.Errorf("got %q", errOut.String())
	}
}

func TestVerify(t *testing.T) {
	cc, out, _ := testContext()
	err := MainCommand().Run(cc, []string{"verify",
		"-input", pizzaFile("input.txt"),
		"-schema", pizzaFile("schema.json"),
		"-expected", pizzaFile("output.json"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "ok") {
		t.Errorf("got %q", out.String())
	}

	want, err := os.ReadFile(pizzaFile("output.json"))
	if err != nil {
		t.Fatal(err)
	}
	expected := filepath.Join(t.TempDir(), "expected.json")
	edited := strings.Replace(string(want), `"nrows": 3`, `"nrows": 4`, 1)
	if err := os.WriteFile(expected, []byte(edited), 0644); err != nil {
		t.Fatal(err)
	}
	cc, out, _ = testContext()
	err = MainCommand().Run(cc, []string{"v",
		"-i", pizzaFile("input.txt"),
		"-s", pizzaFile("schema.json"),
		"-e", expected,
	})
	var xc cli.ExitCodeErr
	if !errors.As(err, &xc) || xc != 1 {
		t.Fatalf("expected exit code 1, got %v", err)
	}
	got := out.String()
	for _, line := range []string{"-  \"nrows\": 4,", "+  \"nrows\": 3,", "   \"ncolumns\": 5,"} {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("missing %q in\n%s", line, got)
		}
	}
	if strings.Contains(got, "%s") {
		t.Errorf("unformatted diff lines:\n%s", got)
	}
}

func TestCheck(t *testing.T) {
	cc, out, _ := testContext()
	if err := MainCommand().Run(cc, []string{"check", pizzaFile("schema.json")}); err != nil {
		t.Fatal(err)
	}
	var canonical map[string]any
	if err := json.Unmarshal(out.Bytes(), &canonical); err != nil {
		t.Fatalf("%v in\n%s", err, out.String())
	}
	if canonical["type"] != "object" {
		t.Errorf("got %v", canonical)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{"type": 7}`), 0644); err != nil {
		t.Fatal(err)
	}
	cc, out, errOut := testContext()
	err := MainCommand().Run(cc, []string{"c", bad, pizzaFile("schema.json")})
	var xc cli.ExitCodeErr
	if !errors.As(err, &xc) || xc != 1 {
		t.Fatalf("expected exit code 1, got %v", err)
	}
	if !strings.Contains(errOut.String(), "expected") {
		t.Errorf("got %q", errOut.String())
	}
	if !strings.Contains(out.String(), `"type": "object"`) {
		t.Errorf("valid schema after a bad one not printed:\n%s", out.String())
	}
}

func TestCheckRequiresFiles(t *testing.T) {
	cc, _, _ := testContext()
	err := CheckCommand(&MainConfig{}).Run(cc, nil)
	if !errors.Is(err, cli.ErrUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
}
