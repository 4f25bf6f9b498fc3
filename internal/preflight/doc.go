// Package preflight provides readiness checks for the external tools and
// filesystem paths that ytmeta depends on.
//
// These checks run in two contexts:
//   - The pipeline verifies the scratch parent (and the keep directory when
//     audio is retained) before invoking any tool, so a long transcription is
//     never wasted on an unwritable destination.
//   - The CLI "ytmeta check" command uses RunAll and CheckSystemDeps to
//     display tool and directory health.
package preflight
