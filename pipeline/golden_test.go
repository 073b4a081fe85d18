package pipeline_test

import (
	"testing"

	"github.com/ivanyeors/solar-design-system/config"
	"github.com/ivanyeors/solar-design-system/emit"
	"github.com/ivanyeors/solar-design-system/pipeline"
	"github.com/ivanyeors/solar-design-system/testutil"
)

// The golden file pins the emitted SCSS byte-for-byte; regenerate with
// go test ./pipeline -run TestGolden -update.
func TestGoldenSCSS(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "studio", "/project/tokens")

	run, err := pipeline.Resolve(mfs, config.Default(), []string{"/project/tokens/studio.json"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !run.Clean() {
		t.Fatal("expected clean resolution")
	}

	files := emit.BuildFiles(run.Records())
	if _, err := emit.Write(mfs, "/project/src/tokens", files, emit.NewSCSSFormatter()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	actual, err := mfs.ReadFile("/project/src/tokens/option-tokens/_colors.scss")
	if err != nil {
		t.Fatalf("expected colors partial written: %v", err)
	}

	testutil.UpdateGoldenFile(t, "golden/_colors.scss", actual)
	expected := testutil.LoadFixtureFile(t, "golden/_colors.scss")
	if string(actual) != string(expected) {
		t.Errorf("emitted SCSS differs from golden file\ngot:\n%s\nwant:\n%s", actual, expected)
	}
}
