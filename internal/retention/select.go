package retention

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of a selection run
type Result struct {
	// Retired lists ids from the version tier (dropped versions and duplicate
	// primaries) followed by ids from the release tier
	Retired []string

	RetiredVersions   int // whole versions dropped
	RetiredReleases   int // release entries dropped inside kept versions
	RetiredDuplicates int // extra primary builds dropped inside kept versions
}

// Select applies policy to every package name in idx and returns the ids to
// retire. A nil order means InsertionOrder. idx is not modified.
func Select(idx *NameIndex, policy Policy, order VersionOrder) (*Result, error) {
	if idx == nil {
		return nil, ErrNoInput
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if order == nil {
		order = InsertionOrder{}
	}

	res := &Result{}
	var versionTier, releaseTier []string

	for _, name := range idx.Names() {
		versions := order.Order(idx.Versions(name))
		keep := policy.VersionsToKeep
		if keep > len(versions) {
			keep = len(versions)
		}

		for _, v := range versions[keep:] {
			b, _ := idx.Bucket(name, v)
			logrus.Debugf("Retiring %s version %s (%d ids)", name, v, len(b.PrimaryIDs)+len(b.Releases))
			versionTier = append(versionTier, b.PrimaryIDs...)
			versionTier = append(versionTier, b.ReleaseIDs()...)
			res.RetiredVersions++
		}

		for _, v := range versions[:keep] {
			b, _ := idx.Bucket(name, v)

			releases := b.ReleaseIDs()
			sort.Sort(sort.Reverse(sort.StringSlice(releases)))
			if len(releases) > policy.ReleasesPerVersionToKeep {
				dropped := releases[policy.ReleasesPerVersionToKeep:]
				releaseTier = append(releaseTier, dropped...)
				res.RetiredReleases += len(dropped)
			}

			primaries := append([]string(nil), b.PrimaryIDs...)
			sort.Strings(primaries)
			if len(primaries) > 1 {
				versionTier = append(versionTier, primaries[1:]...)
				res.RetiredDuplicates += len(primaries) - 1
			}
		}
	}

	logrus.Debugf("Version ids to retire: %v", versionTier)
	logrus.Debugf("Release ids to retire: %v", releaseTier)

	res.Retired = make([]string, 0, len(versionTier)+len(releaseTier))
	res.Retired = append(res.Retired, versionTier...)
	res.Retired = append(res.Retired, releaseTier...)
	return res, nil
}
