package dialect

import (
	"strings"

	"github.com/rezonia/einvoice/internal/model"
)

type guideline struct {
	version model.Version
	profile model.Profile
	id      string
}

// guidelines lists the identifiers written into GuidelineSpecifiedDocument-
// ContextParameter (CII) and CustomizationID (UBL). The first entry for a
// (version, profile) pair is the one written; later ones are accepted on
// read.
var guidelines = []guideline{
	{model.Version1, model.ProfileBasic, "urn:ferd:CrossIndustryDocument:invoice:1p0:basic"},
	{model.Version1, model.ProfileComfort, "urn:ferd:CrossIndustryDocument:invoice:1p0:comfort"},
	{model.Version1, model.ProfileExtended, "urn:ferd:CrossIndustryDocument:invoice:1p0:extended"},

	{model.Version20, model.ProfileMinimum, "urn:zugferd.de:2p0:minimum"},
	{model.Version20, model.ProfileBasicWL, "urn:zugferd.de:2p0:basicwl"},
	{model.Version20, model.ProfileBasic, "urn:cen.eu:en16931:2017#compliant#urn:zugferd.de:2p0:basic"},
	{model.Version20, model.ProfileComfort, "urn:cen.eu:en16931:2017"},
	{model.Version20, model.ProfileExtended, "urn:cen.eu:en16931:2017#conformant#urn:zugferd.de:2p0:extended"},
	{model.Version20, model.ProfileXRechnung1, "urn:cen.eu:en16931:2017#compliant#urn:xoev-de:kosit:standard:xrechnung_1.2"},
	{model.Version20, model.ProfileXRechnung, "urn:cen.eu:en16931:2017#compliant#urn:xoev-de:kosit:standard:xrechnung_2.0"},

	{model.Version23, model.ProfileMinimum, "urn:factur-x.eu:1p0:minimum"},
	{model.Version23, model.ProfileBasicWL, "urn:factur-x.eu:1p0:basicwl"},
	{model.Version23, model.ProfileBasic, "urn:cen.eu:en16931:2017#compliant#urn:factur-x.eu:1p0:basic"},
	{model.Version23, model.ProfileComfort, "urn:cen.eu:en16931:2017"},
	{model.Version23, model.ProfileExtended, "urn:cen.eu:en16931:2017#conformant#urn:factur-x.eu:1p0:extended"},
	{model.Version23, model.ProfileXRechnung1, "urn:cen.eu:en16931:2017#compliant#urn:xoev-de:kosit:standard:xrechnung_1.2"},
	{model.Version23, model.ProfileXRechnung, "urn:cen.eu:en16931:2017#compliant#urn:xeinkauf.de:kosit:standard:xrechnung_3.0"},
	{model.Version23, model.ProfileXRechnung, "urn:cen.eu:en16931:2017#compliant#urn:xeinkauf.de:kosit:standard:xrechnung_2.3"},
	{model.Version23, model.ProfileXRechnung, "urn:cen.eu:en16931:2017#compliant#urn:xeinkauf.de:kosit:standard:xrechnung_2.2"},
	{model.Version23, model.ProfileXRechnung, "urn:cen.eu:en16931:2017#compliant#urn:xoev-de:kosit:standard:xrechnung_2.1"},
	{model.Version23, model.ProfileEReporting, "urn.cpro.gouv.fr:1p0:ereporting"},
}

// GuidelineID returns the identifier to write for a version and profile
func GuidelineID(v model.Version, p model.Profile) (string, bool) {
	for _, g := range guidelines {
		if g.version == v && g.profile == p {
			return g.id, true
		}
	}
	return "", false
}

// ResolveGuideline maps an identifier found in a document to its version
// and profile. Identifiers shared by several versions resolve to the
// newest one.
func ResolveGuideline(id string) (model.Version, model.Profile, bool) {
	id = strings.TrimSpace(id)
	found := false
	var version model.Version
	var profile model.Profile
	for _, g := range guidelines {
		if g.id == id && (!found || g.version > version) {
			version, profile, found = g.version, g.profile, true
		}
	}
	return version, profile, found
}
