package research

// reviewSiteDomains restricts complaint searches to known review sites.
var reviewSiteDomains = []string{
	"trustpilot.com",
	"reviews.io",
	"sitejabber.com",
	"bbb.org",
	"complaintsboard.com",
	"resolver.co.uk",
}

// thirdPartyEmailDomains are domains whose addresses must never reach the
// contact output: regulators, ombudsmen, and complaint aggregators that
// show up in search results about a company but do not belong to it.
var thirdPartyEmailDomains = []string{
	"trustpilot.com",
	"reviews.io",
	"sitejabber.com",
	"bbb.org",
	"complaintsboard.com",
	"resolver.co.uk",
	"ombudsman-services.org",
	"financial-ombudsman.org.uk",
	"citizensadvice.org.uk",
	"ftc.gov",
	"accc.gov.au",
	"which.co.uk",
	"moneysavingexpert.com",
}

// uselessLocalParts filter out mailboxes that never answer consumers.
var uselessLocalParts = []string{
	"noreply",
	"no-reply",
	"donotreply",
	"careers",
	"jobs",
	"recruitment",
	"press",
	"abuse",
	"postmaster",
	"mailer-daemon",
}

// disposableEmailDomains and documentation domains are never real
// contact points.
var disposableEmailDomains = []string{
	"example.com",
	"example.org",
	"test.com",
	"mailinator.com",
	"guerrillamail.com",
	"yopmail.com",
	"sentry.io",
	"wixpress.com",
}

// knownCompanyDomains resolves very common company names to their primary
// domain without a search round trip.
var knownCompanyDomains = map[string]string{
	"amazon":          "amazon.com",
	"amazon uk":       "amazon.co.uk",
	"apple":           "apple.com",
	"argos":           "argos.co.uk",
	"asos":            "asos.com",
	"british airways": "britishairways.com",
	"british gas":     "britishgas.co.uk",
	"currys":          "currys.co.uk",
	"easyjet":         "easyjet.com",
	"ebay":            "ebay.com",
	"john lewis":      "johnlewis.com",
	"netflix":         "netflix.com",
	"paypal":          "paypal.com",
	"ryanair":         "ryanair.com",
	"sky":             "sky.com",
	"tesco":           "tesco.com",
	"virgin media":    "virginmedia.com",
	"vodafone":        "vodafone.co.uk",
}

// socialReservedPaths are platform path segments that are never a company
// profile (share links, auth pages, hashtags, and the like).
var socialReservedPaths = []string{
	"share",
	"sharer",
	"intent",
	"login",
	"signup",
	"home",
	"hashtag",
	"search",
	"explore",
	"help",
	"about",
	"legal",
	"privacy",
	"terms",
	"settings",
	"watch",
	"embed",
	"plugins",
	"oauth",
	"i",
}
