package md2html

import (
	"reflect"
	"testing"
)

func TestBaselineSet(t *testing.T) {
	rs := newResolvedExtensions()
	if !rs.Active(ExtExtra) {
		t.Error("baseline set misses the extras bundle")
	}
	if !rs.Active(ExtMath) {
		t.Error("baseline set misses the math extension")
	}
	if len(rs.Names) != 2 {
		t.Errorf("baseline set has %d names, want 2", len(rs.Names))
	}
}

func TestCloneIsolation(t *testing.T) {
	base := newResolvedExtensions()
	base.Configs[ExtMath] = ExtensionConfig{"enable_dollar_delimiter": false}

	cloned := base.clone()
	cloned.Names[ExtTables] = struct{}{}
	cloned.Configs[ExtMath]["enable_dollar_delimiter"] = true
	delete(cloned.Names, ExtExtra)

	if base.Active(ExtTables) {
		t.Error("clone leaked an added name into the original")
	}
	if !base.Active(ExtExtra) {
		t.Error("clone leaked a deletion into the original")
	}
	if base.Configs[ExtMath]["enable_dollar_delimiter"] != false {
		t.Error("clone leaked a config mutation into the original")
	}
}

func TestSortedNames(t *testing.T) {
	rs := newResolvedExtensions()
	rs.Names[ExtTables] = struct{}{}
	rs.Names[ExtCodeHilite] = struct{}{}

	want := []string{ExtCodeHilite, ExtExtra, ExtTables, ExtMath}
	if got := rs.sortedNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("sortedNames() = %v, want %v", got, want)
	}
}
