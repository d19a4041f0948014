// Kinoteca - In-Memory Media Catalog and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kinoteca

package catalog

// Award is a closed set of actor award kinds.
type Award string

// Award kinds recognised in actor records and filter blocks.
const (
	AwardBestScreenplay      Award = "BEST_SCREENPLAY"
	AwardBestSupportingActor Award = "BEST_SUPPORTING_ACTOR"
	AwardBestDirector        Award = "BEST_DIRECTOR"
	AwardBestPerformance     Award = "BEST_PERFORMANCE"
	AwardPeopleChoice        Award = "PEOPLE_CHOICE_AWARD"
)

var awardsByName = map[string]Award{
	string(AwardBestScreenplay):      AwardBestScreenplay,
	string(AwardBestSupportingActor): AwardBestSupportingActor,
	string(AwardBestDirector):        AwardBestDirector,
	string(AwardBestPerformance):     AwardBestPerformance,
	string(AwardPeopleChoice):        AwardPeopleChoice,
}

// ParseAward resolves an award name. Award names are upper-case
// identifiers in the input and are matched exactly.
func ParseAward(name string) (Award, bool) {
	a, ok := awardsByName[name]
	return a, ok
}

// String returns the award identifier.
func (a Award) String() string {
	return string(a)
}
