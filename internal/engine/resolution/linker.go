package resolution

import "go.trai.ch/pkgsweep/internal/core/domain"

// LinkSignatures gives every signature file the fate of its data file. It
// must run after the data files of outcome are fully settled.
//
// A signature whose data file is superseded is superseded. A signature whose
// data file is not kept (ignored, unparsable or missing) is ignored. The
// signature of a kept data file is left out of every set.
func LinkSignatures(signatures []string, outcome *domain.Outcome) {
	for _, sig := range signatures {
		data := domain.SignedPath(sig)
		switch {
		case outcome.Superseded.Has(data):
			outcome.Superseded.Add(sig)
		case !outcome.Kept.Has(data):
			outcome.Ignored.Add(sig)
		}
	}
}
