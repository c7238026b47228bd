package service

// Trusted CDN hosts whose images are accepted without escalation.
var trustedDomains = []string{
	"images.unsplash.com",
	"via.placeholder.com",
	"picsum.photos",
	"source.unsplash.com",
}

// Keywords that flag content as inappropriate for the marketplace.
var blockedKeywords = []string{
	"nude", "naked", "nsfw", "adult", "porn", "sex", "explicit",
	"bikini", "lingerie", "underwear", "topless", "bare",
	"violence", "weapon", "gun", "knife", "blood", "gore",
	"drug", "marijuana", "cocaine", "pills", "smoking",
	"hate", "racist", "nazi", "offensive",
}

// Domain vocabulary of the off-road marketplace. Text carrying several of
// these is classified safe with raised confidence.
var safeKeywords = []string{
	"jeep", "truck", "suv", "tire", "wheel", "engine", "part",
	"camping", "tent", "gear", "tool", "winch", "bumper",
	"lift", "suspension", "light", "bar", "roof", "rack",
}

// URI schemes of local device images, which a remote classifier cannot
// fetch and are therefore trusted by policy.
var localImagePrefixes = []string{
	"file://", "content://", "assets-library://", "ph://", "data:image",
}
