package lexicon

// Built-in English word lists. Normalization lowercases input and strips
// punctuation before lookup, so every entry here is lowercase and
// apostrophe-free.

var defaultPositive = []string{
	"good", "great", "excellent", "amazing", "wonderful", "fantastic",
	"awesome", "love", "loved", "best", "perfect", "happy", "glad",
	"pleased", "delighted", "nice", "brilliant", "superb", "helpful",
	"useful", "easy", "smooth", "fast", "reliable", "intuitive",
	"beautiful", "enjoy", "enjoyed", "like", "liked", "impressive",
	"satisfied", "thanks", "thank", "recommend", "solid", "clean",
	"clear", "friendly", "responsive",
}

var defaultNegative = []string{
	"bad", "terrible", "awful", "horrible", "worst", "hate", "hated",
	"poor", "broken", "slow", "buggy", "confusing", "frustrating",
	"frustrated", "annoying", "annoyed", "useless", "disappointing",
	"disappointed", "ugly", "difficult", "hard", "painful", "crash",
	"crashes", "crashed", "fail", "failed", "failure", "error",
	"errors", "unusable", "unreliable", "missing", "wrong", "sad",
	"angry", "upset", "lost", "stuck",
}

var defaultIntensifiers = []string{
	"very", "really", "extremely", "incredibly", "absolutely",
	"completely", "totally", "so", "super", "quite",
}

var defaultNegators = []string{
	"not", "no", "never", "neither", "nobody", "nothing", "nowhere",
	"nor", "cannot", "without", "hardly", "barely",
}

var defaultEmotions = map[string][]string{
	"joy": {
		"happy", "joy", "delighted", "excited", "thrilled", "cheerful",
		"glad", "pleased", "love", "wonderful",
	},
	"anger": {
		"angry", "furious", "mad", "annoyed", "irritated", "outraged",
		"frustrated", "hate", "rage",
	},
	"sadness": {
		"sad", "unhappy", "depressed", "miserable", "disappointed",
		"heartbroken", "gloomy", "crying",
	},
	"fear": {
		"afraid", "scared", "worried", "anxious", "nervous", "terrified",
		"panic", "dread",
	},
	"surprise": {
		"surprised", "shocked", "amazed", "astonished", "stunned",
		"unexpected", "wow",
	},
}
