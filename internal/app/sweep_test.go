package app_test

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgsweep/internal/app"
	"go.trai.ch/pkgsweep/internal/core/domain"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestSweep_NewerVersionSupersedesOlder(t *testing.T) {
	h := newHarness(t)
	h.expectConfig(config(domain.ConfirmNothing, false))
	h.expectScan("foo-1.0-1-x86_64.pkg.tar.zst", "foo-1.1-1-x86_64.pkg.tar.zst")
	h.expectOutcome()

	gomock.InOrder(
		h.remover.EXPECT().Remove(pkg("foo-1.0-1-x86_64.pkg.tar.zst")).Return(nil),
		h.reporter.EXPECT().Removed(pkg("foo-1.0-1-x86_64.pkg.tar.zst")),
		h.reporter.EXPECT().Summary(gomock.Any(), domain.RemovalReport{
			Removed: []string{pkg("foo-1.0-1-x86_64.pkg.tar.zst")},
		}, false),
	)

	require.NoError(t, h.app.Sweep(context.Background(), app.SweepOptions{}))

	assert.Equal(t, []string{pkg("foo-1.0-1-x86_64.pkg.tar.zst")}, h.outcome.Superseded.Sorted())
	assert.Equal(t, []string{pkg("foo-1.1-1-x86_64.pkg.tar.zst")}, h.outcome.Kept.Sorted())
	assert.Zero(t, h.outcome.Ignored.Len())
}

func TestSweep_SignatureOfKeptFileStays(t *testing.T) {
	h := newHarness(t)
	h.expectConfig(config(domain.ConfirmAmbiguities, false))
	h.expectScan("bar.txt", "foo-1.0-1-x86_64.pkg.tar.zst", "foo-1.0-1-x86_64.pkg.tar.zst.sig")
	h.expectOutcome()
	h.reporter.EXPECT().Summary(gomock.Any(), domain.RemovalReport{}, false)

	require.NoError(t, h.app.Sweep(context.Background(), app.SweepOptions{}))

	assert.Zero(t, h.outcome.Superseded.Len())
	assert.Equal(t, []string{pkg("bar.txt")}, h.outcome.Ignored.Sorted())
	assert.False(t, h.outcome.Ignored.Has(pkg("foo-1.0-1-x86_64.pkg.tar.zst.sig")))
}

func TestSweep_AmbiguityChoiceSupersedesOthers(t *testing.T) {
	h := newHarness(t)
	h.expectConfig(config(domain.ConfirmAmbiguities, true))
	h.expectScan("foo-1.0.1-1-any.pkg.tar.zst", "foo-1.0a-1-any.pkg.tar.zst")
	h.expectOutcome()
	h.prompter.EXPECT().Ask(gomock.Any(), gomock.Any()).Return("", nil)
	h.reporter.EXPECT().Summary(gomock.Any(), domain.RemovalReport{}, true)

	require.NoError(t, h.app.Sweep(context.Background(), app.SweepOptions{}))

	// "1.0a-1" sorts before "1.0.1-1" in descending string order.
	assert.Equal(t, []string{pkg("foo-1.0a-1-any.pkg.tar.zst")}, h.outcome.Kept.Sorted())
	assert.Equal(t, []string{pkg("foo-1.0.1-1-any.pkg.tar.zst")}, h.outcome.Superseded.Sorted())
}

func TestSweep_NothingLevelKeepsAmbiguities(t *testing.T) {
	h := newHarness(t)
	h.expectConfig(config(domain.ConfirmNothing, false))
	h.expectScan("foo-1.0.1-1-any.pkg.tar.zst", "foo-1.0a-1-any.pkg.tar.zst")
	h.expectOutcome()
	h.reporter.EXPECT().Summary(gomock.Any(), domain.RemovalReport{}, false)

	// No Ask and no Remove expectations: gomock fails on any call.
	require.NoError(t, h.app.Sweep(context.Background(), app.SweepOptions{}))

	assert.Equal(t, 2, h.outcome.Kept.Len())
	assert.Zero(t, h.outcome.Superseded.Len())
	assert.Zero(t, h.outcome.Ignored.Len())
}

func TestSweep_IgnoreAllIgnoresGroupAndSignatures(t *testing.T) {
	h := newHarness(t)
	h.expectConfig(config(domain.ConfirmAmbiguities, false))
	h.expectScan(
		"foo-1.0.1-1-any.pkg.tar.zst",
		"foo-1.0.1-1-any.pkg.tar.zst.sig",
		"foo-1.0a-1-any.pkg.tar.zst",
	)
	h.expectOutcome()
	h.prompter.EXPECT().Ask(gomock.Any(), gomock.Any()).Return("i", nil)
	h.reporter.EXPECT().Summary(gomock.Any(), domain.RemovalReport{}, false)

	require.NoError(t, h.app.Sweep(context.Background(), app.SweepOptions{}))

	assert.Zero(t, h.outcome.Superseded.Len())
	assert.Zero(t, h.outcome.Kept.Len())
	assert.Equal(t, []string{
		pkg("foo-1.0.1-1-any.pkg.tar.zst"),
		pkg("foo-1.0.1-1-any.pkg.tar.zst.sig"),
		pkg("foo-1.0a-1-any.pkg.tar.zst"),
	}, h.outcome.Ignored.Sorted())
}

func TestSweep_SkipsNonRegularEntries(t *testing.T) {
	h := newHarness(t)
	h.expectConfig(config(domain.ConfirmNothing, true))
	h.scanner.EXPECT().Scan(testDir).Return([]domain.Entry{
		{Path: pkg("subdir.pkg.tar.zst"), Regular: false},
		{Path: pkg("foo-1.0-1-any.pkg.tar.zst"), Regular: true},
	}, nil)
	h.expectOutcome()
	h.reporter.EXPECT().Summary(gomock.Any(), gomock.Any(), true)

	require.NoError(t, h.app.Sweep(context.Background(), app.SweepOptions{}))

	assert.Zero(t, h.outcome.Ignored.Len(), "directories are neither reported nor compared")
	assert.Equal(t, []string{pkg("foo-1.0-1-any.pkg.tar.zst")}, h.outcome.Kept.Sorted())
}

func TestClassify_PartitionIsExact(t *testing.T) {
	names := []string{
		"foo-1.0-1-x86_64.pkg.tar.zst",
		"foo-1.0-1-x86_64.pkg.tar.zst.sig",
		"foo-1.1-1-x86_64.pkg.tar.zst",
		"foo-1.2-1-x86_64.pkg.tar.zst",
		"foo-1.2-1-x86_64.pkg.tar.zst.sig",
		"foo-1.2a-1-x86_64.pkg.tar.zst",
		"bar-2:0.1-1-any.pkg.tar.xz",
		"bar-1.9-3-any.pkg.tar.xz",
		"orphan-1.0-1-any.pkg.tar.zst.sig",
		"README",
	}

	h := newHarness(t)
	h.scanner.EXPECT().Scan(testDir).Return(entries(names...), nil)
	h.prompter.EXPECT().Ask(gomock.Any(), gomock.Any()).Return("1", nil)

	outcome, err := h.app.Classify(context.Background(), domain.Config{
		TargetDirectory: testDir,
		ConfirmLevel:    domain.ConfirmEverything,
	})
	require.NoError(t, err)

	seen := map[string]int{}
	for _, set := range []domain.PathSet{outcome.Superseded, outcome.Ignored, outcome.Kept} {
		for path := range set.All() {
			seen[path]++
		}
	}
	for path, n := range seen {
		assert.Equal(t, 1, n, "%s classified %d times", path, n)
	}

	// Signatures of kept files are implicitly kept and appear in no set.
	assert.Len(t, seen, len(names)-1)
	assert.Equal(t, []string{
		pkg("bar-1.9-3-any.pkg.tar.xz"),
		pkg("foo-1.0-1-x86_64.pkg.tar.zst"),
		pkg("foo-1.0-1-x86_64.pkg.tar.zst.sig"),
		pkg("foo-1.1-1-x86_64.pkg.tar.zst"),
		pkg("foo-1.2a-1-x86_64.pkg.tar.zst"),
	}, outcome.Superseded.Sorted())
	assert.Equal(t, []string{
		pkg("README"),
		pkg("orphan-1.0-1-any.pkg.tar.zst.sig"),
	}, outcome.Ignored.Sorted())
	assert.Equal(t, []string{
		pkg("bar-2:0.1-1-any.pkg.tar.xz"),
		pkg("foo-1.2-1-x86_64.pkg.tar.zst"),
	}, outcome.Kept.Sorted())
}

func TestClassify_IdempotentAfterRemoval(t *testing.T) {
	names := []string{
		"foo-1.0-1-x86_64.pkg.tar.zst",
		"foo-1.0-1-x86_64.pkg.tar.zst.sig",
		"foo-1.1-1-x86_64.pkg.tar.zst",
		"foo-1.1-1-x86_64.pkg.tar.zst.sig",
		"bar-0.9-1-any.pkg.tar.xz",
		"bar-0.10-1-any.pkg.tar.xz",
		"baz-3-1-any.pkg.tar.gz",
	}
	cfg := domain.Config{TargetDirectory: testDir, ConfirmLevel: domain.ConfirmNothing}

	h := newHarness(t)
	h.scanner.EXPECT().Scan(testDir).Return(entries(names...), nil)
	first, err := h.app.Classify(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, 3, first.Superseded.Len())

	var survivors []string
	for _, name := range names {
		if !first.Superseded.Has(pkg(name)) {
			survivors = append(survivors, name)
		}
	}

	h.scanner.EXPECT().Scan(testDir).Return(entries(survivors...), nil)
	second, err := h.app.Classify(context.Background(), cfg)
	require.NoError(t, err)

	assert.Zero(t, second.Superseded.Len())
	assert.Zero(t, second.Ignored.Len())
	assert.Equal(t, 3, second.Kept.Len())
}

func TestSweep_RemovalConfirmation(t *testing.T) {
	tests := []struct {
		name        string
		answers     []string
		wantRemoved bool
	}{
		{name: "default answer removes", answers: []string{""}, wantRemoved: true},
		{name: "yes removes", answers: []string{"Y"}, wantRemoved: true},
		{name: "no keeps everything", answers: []string{"no"}, wantRemoved: false},
		{name: "invalid answer asks again", answers: []string{"maybe", "n"}, wantRemoved: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.expectConfig(config(domain.ConfirmRemoval, false))
			h.expectScan("foo-1.0-1-any.pkg.tar.zst", "foo-1.1-1-any.pkg.tar.zst")
			h.expectOutcome()

			calls := make([]any, 0, len(tt.answers))
			for _, answer := range tt.answers {
				calls = append(calls, h.prompter.EXPECT().Ask(gomock.Any(), "Remove 1 file? [Y/n]: ").Return(answer, nil))
			}
			gomock.InOrder(calls...)

			old := pkg("foo-1.0-1-any.pkg.tar.zst")
			want := domain.RemovalReport{Skipped: []string{old}}
			if tt.wantRemoved {
				h.remover.EXPECT().Remove(old).Return(nil)
				h.reporter.EXPECT().Removed(old)
				want = domain.RemovalReport{Removed: []string{old}}
			}
			h.reporter.EXPECT().Summary(gomock.Any(), want, false)

			require.NoError(t, h.app.Sweep(context.Background(), app.SweepOptions{}))
		})
	}
}

func TestSweep_PerFileConfirmation(t *testing.T) {
	h := newHarness(t)
	h.expectConfig(config(domain.ConfirmEverything, false))
	h.expectScan(
		"bar-1.0-1-any.pkg.tar.zst",
		"bar-1.0-1-any.pkg.tar.zst.sig",
		"bar-1.1-1-any.pkg.tar.zst",
		"foo-1.0-1-any.pkg.tar.zst",
		"foo-1.0-1-any.pkg.tar.zst.sig",
		"foo-1.1-1-any.pkg.tar.zst",
	)
	h.expectOutcome()

	oldBar, oldBarSig := pkg("bar-1.0-1-any.pkg.tar.zst"), pkg("bar-1.0-1-any.pkg.tar.zst.sig")
	oldFoo, oldFooSig := pkg("foo-1.0-1-any.pkg.tar.zst"), pkg("foo-1.0-1-any.pkg.tar.zst.sig")

	gomock.InOrder(
		h.prompter.EXPECT().Ask(gomock.Any(), "Remove `"+oldBar+"`? [Y/n]: ").Return("n", nil),
		h.prompter.EXPECT().Ask(gomock.Any(), "Remove `"+oldFoo+"`? [Y/n]: ").Return("y", nil),
		h.remover.EXPECT().Remove(oldFoo).Return(nil),
		h.reporter.EXPECT().Removed(oldFoo),
		h.remover.EXPECT().Remove(oldFooSig).Return(nil),
		h.reporter.EXPECT().Removed(oldFooSig),
		h.reporter.EXPECT().Summary(gomock.Any(), domain.RemovalReport{
			Removed: []string{oldFoo, oldFooSig},
			Skipped: []string{oldBar, oldBarSig},
		}, false),
	)

	require.NoError(t, h.app.Sweep(context.Background(), app.SweepOptions{}))
	assert.True(t, h.outcome.Superseded.Has(oldBar), "declined files keep their classification")
}

func TestSweep_RemovalFailureAborts(t *testing.T) {
	h := newHarness(t)
	h.expectConfig(config(domain.ConfirmNothing, false))
	h.expectScan(
		"a-1-1-any.pkg.tar.zst",
		"a-2-1-any.pkg.tar.zst",
		"b-1-1-any.pkg.tar.zst",
		"b-2-1-any.pkg.tar.zst",
		"c-1-1-any.pkg.tar.zst",
		"c-2-1-any.pkg.tar.zst",
	)
	h.expectOutcome()

	gomock.InOrder(
		h.remover.EXPECT().Remove(pkg("a-1-1-any.pkg.tar.zst")).Return(nil),
		h.reporter.EXPECT().Removed(pkg("a-1-1-any.pkg.tar.zst")),
		h.remover.EXPECT().Remove(pkg("b-1-1-any.pkg.tar.zst")).
			Return(zerr.Wrap(os.ErrPermission, "failed to delete file")),
	)
	// c-1 is never attempted and no summary is printed.

	err := h.app.Sweep(context.Background(), app.SweepOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRemovalFailed))
	assert.True(t, errors.Is(err, os.ErrPermission))
	assert.ErrorContains(t, err, "removal aborted after 1 of 3 files")
}

func TestSweep_ScanErrors(t *testing.T) {
	t.Run("not a directory", func(t *testing.T) {
		h := newHarness(t)
		h.expectConfig(config(domain.ConfirmNothing, false))
		h.scanner.EXPECT().Scan(testDir).Return(nil, zerr.Wrap(domain.ErrNotADirectory, "cannot scan target"))

		err := h.app.Sweep(context.Background(), app.SweepOptions{})
		assert.True(t, errors.Is(err, domain.ErrNotADirectory))
		assert.False(t, errors.Is(err, domain.ErrScanFailed))
	})

	t.Run("read failure", func(t *testing.T) {
		h := newHarness(t)
		h.expectConfig(config(domain.ConfirmNothing, false))
		h.scanner.EXPECT().Scan(testDir).Return(nil, zerr.Wrap(os.ErrPermission, "failed to read directory"))

		err := h.app.Sweep(context.Background(), app.SweepOptions{})
		assert.True(t, errors.Is(err, domain.ErrScanFailed))
	})
}

func TestSweep_PromptFailure(t *testing.T) {
	h := newHarness(t)
	h.expectConfig(config(domain.ConfirmAmbiguities, false))
	h.expectScan("foo-1.0.1-1-any.pkg.tar.zst", "foo-1.0a-1-any.pkg.tar.zst")
	h.prompter.EXPECT().Ask(gomock.Any(), gomock.Any()).Return("", io.EOF)

	err := h.app.Sweep(context.Background(), app.SweepOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.EOF))
	assert.ErrorContains(t, err, domain.ErrPromptFailed.Error())
}

func TestSweep_Options(t *testing.T) {
	t.Run("flags override file values", func(t *testing.T) {
		h := newHarness(t)
		h.loader.EXPECT().Load("/etc/pkgsweep.yaml").Return(domain.Config{
			TargetDirectory: "/elsewhere",
			ConfirmLevel:    domain.ConfirmEverything,
		}, nil)
		h.expectScan("foo-1.0-1-any.pkg.tar.zst", "foo-1.1-1-any.pkg.tar.zst")
		h.expectOutcome()
		h.reporter.EXPECT().Summary(gomock.Any(), domain.RemovalReport{}, true)

		require.NoError(t, h.app.Sweep(context.Background(), app.SweepOptions{
			ConfigPath:   "/etc/pkgsweep.yaml",
			Directory:    testDir,
			DryRun:       true,
			ConfirmLevel: "nothing",
		}))
	})

	t.Run("configured directory is used", func(t *testing.T) {
		h := newHarness(t)
		h.expectConfig(domain.Config{TargetDirectory: "/srv/repo", ConfirmLevel: domain.ConfirmNothing, DryRun: true})
		h.scanner.EXPECT().Scan("/srv/repo").Return(nil, nil)
		h.expectOutcome()
		h.reporter.EXPECT().Summary(gomock.Any(), domain.RemovalReport{}, true)

		require.NoError(t, h.app.Sweep(context.Background(), app.SweepOptions{}))
	})

	t.Run("invalid confirm flag", func(t *testing.T) {
		h := newHarness(t)
		h.expectConfig(domain.DefaultConfig())

		err := h.app.Sweep(context.Background(), app.SweepOptions{ConfirmLevel: "always"})
		assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
	})

	t.Run("config load failure", func(t *testing.T) {
		h := newHarness(t)
		h.loader.EXPECT().Load("").Return(domain.Config{}, zerr.With(domain.ErrConfigParseFailed, "path", "x"))

		err := h.app.Sweep(context.Background(), app.SweepOptions{})
		assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
	})
}
