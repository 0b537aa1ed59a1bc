package config_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/mlang/config"
	"github.com/lyraproj/mlang/evaluator"
)

func TestParse(t *testing.T) {
	c, err := config.Parse(`mlang.yaml`, []byte(`
base_dir: lib
log_level: debug
banner: false
requires: ">=1.0.0 <2.0.0"
`))
	if err != nil {
		t.Fatal(err)
	}
	got := []string{c.BaseDir, c.LogLevel, c.Requires}
	if diff := pretty.Diff(got, []string{`lib`, `debug`, `>=1.0.0 <2.0.0`}); len(diff) > 0 {
		t.Errorf("unexpected settings: %v", diff)
	}
	if c.Level(evaluator.WARNING) != evaluator.DEBUG {
		t.Errorf("expected debug level, got %s", c.Level(evaluator.WARNING))
	}
	if c.ShowBanner() {
		t.Error("expected banner to be off")
	}
}

func TestParse_defaults(t *testing.T) {
	c, err := config.Parse(`mlang.yaml`, []byte(``))
	if err != nil {
		t.Fatal(err)
	}
	if !c.ShowBanner() {
		t.Error("expected banner to be on by default")
	}
	if c.Level(evaluator.WARNING) != evaluator.WARNING {
		t.Errorf("expected default level, got %s", c.Level(evaluator.WARNING))
	}
}

func TestParse_errors(t *testing.T) {
	tests := []struct {
		yaml string
		code issue.Code
		msg  string
	}{
		{`colour: blue`, config.ConfigParseFailed, `Failed to parse configuration 'mlang.yaml': `},
		{`banner: [1`, config.ConfigParseFailed, `Failed to parse configuration 'mlang.yaml': `},
		{`log_level: chatty`, config.ConfigInvalidLogLevel, `Invalid log_level 'chatty' in mlang.yaml`},
		{`requires: ">=2.0.0"`, config.ConfigVersionMismatch, `Language version 1.0.0 does not satisfy requires '>=2.0.0' in mlang.yaml`},
		{`requires: "not a range"`, config.ConfigInvalidRequirement, `Invalid requires 'not a range' in mlang.yaml: `},
	}
	for _, tt := range tests {
		_, err := config.Parse(`mlang.yaml`, []byte(tt.yaml))
		if err == nil {
			t.Errorf("%s: expected an error", tt.yaml)
			continue
		}
		ri, ok := err.(issue.Reported)
		if !ok {
			t.Errorf("%s: expected an issue, got %T", tt.yaml, err)
			continue
		}
		if ri.Code() != tt.code {
			t.Errorf("%s: expected code %s, got %s", tt.yaml, tt.code, ri.Code())
		}
		if !strings.HasPrefix(ri.Error(), tt.msg) {
			t.Errorf("%s: expected message %q, got %q", tt.yaml, tt.msg, ri.Error())
		}
	}
}

func TestLoadDefault(t *testing.T) {
	dir, err := ioutil.TempDir(``, `mlang-config`)
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	c, err := config.LoadDefault(dir)
	if err != nil {
		t.Fatal(err)
	}
	if c.BaseDir != `` || !c.ShowBanner() {
		t.Errorf("expected an empty configuration, got %# v", pretty.Formatter(c))
	}

	if err = ioutil.WriteFile(filepath.Join(dir, config.DefaultFile), []byte("base_dir: src\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if c, err = config.LoadDefault(dir); err != nil {
		t.Fatal(err)
	}
	if c.BaseDir != `src` {
		t.Errorf("expected base_dir src, got %q", c.BaseDir)
	}
}

func TestLoad_missing(t *testing.T) {
	_, err := config.Load(`/no/such/mlang.yaml`)
	if err == nil || !strings.HasPrefix(err.Error(), `Failed to read configuration '/no/such/mlang.yaml': no such file or directory`) {
		t.Errorf("unexpected error %v", err)
	}
}
