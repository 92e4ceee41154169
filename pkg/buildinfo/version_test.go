package buildinfo

import (
	"strings"
	"testing"
)

func TestCurrent(t *testing.T) {
	got := Current()
	if got.Version != Version || got.Commit != Commit || got.Date != Date {
		t.Errorf("Current() = %+v, want package variables", got)
	}
	if s := got.String(); !strings.HasPrefix(s, "version: "+Version+"\n") {
		t.Errorf("String() = %q", s)
	}
}

func TestTemplate(t *testing.T) {
	tpl := Template()
	if !strings.Contains(tpl, "{{.Version}}") || !strings.Contains(tpl, "commit: "+Commit) {
		t.Errorf("Template() = %q", tpl)
	}
}
