package classify

// Keyword tables per category. Keys are the closed sub-tag vocabulary;
// values are lowercase phrases matched by substring containment.

var genreKeywords = map[SubTag][]string{
	"pop":     {"pop"},
	"rock":    {"rock"},
	"hiphop":  {"hip hop", "hip-hop", "rap"},
	"rnb":     {"r&b", "rnb", "soul"},
	"country": {"country"},
	"edm":     {"edm", "electronic", "dance"},
	"indie":   {"indie", "alternative", "alt rock", "alt-pop", "alt pop"},
	"jazz":    {"jazz"},
	"latin":   {"latin"},
}

var sportKeywords = map[SubTag][]string{
	"basketball": {"basketball", "nba", "wnba", "ncaa", "march madness"},
	"football":   {"football", "nfl", "cfb", "ncaa football"},
	"baseball":   {"baseball", "mlb"},
	"hockey":     {"hockey", "nhl"},
	"soccer":     {"soccer", "mls", "premier league", "fc"},
}

var levelKeywords = map[Level][]string{
	LevelPro:     {"nba", "nfl", "mlb", "nhl", "mls", "premier league", "fc"},
	LevelCollege: {"ncaa", "college", "university", "state university"},
}

var comedyKeywords = map[SubTag][]string{
	"standup": {"stand-up", "stand up", "standup"},
	"improv":  {"improv"},
	"club":    {"comedy club", "improv theatre", "improv theater"},
}

var festivalKeywords = map[SubTag][]string{
	"music":    {"music festival", "fest", "music fest"},
	"food":     {"food festival", "wine festival", "beer festival", "bbq", "bbq festival", "brew fest"},
	"cultural": {"fair", "carnival", "parade", "cultural festival"},
}

var theaterKeywords = map[SubTag][]string{
	"musical": {"musical"},
	"play":    {"play", "drama"},
	"family":  {"family", "kids", "children"},
}

var nightlifeKeywords = map[SubTag][]string{
	"bars":          {"bar", "pub", "tavern", "saloon", "taproom", "lounge"},
	"clubs":         {"club", "nightclub", "dj", "discotheque"},
	"livemusicbars": {"live music", "music hall", "bar", "club", "lounge"},
	"rooftop":       {"rooftop", "roof", "sky bar"},
	"latenight":     {"late night", "after party", "afterparty"},
}

var familyKeywords = map[SubTag][]string{
	"familyshows":    {"family", "kids", "children", "all ages", "family-friendly", "family friendly"},
	"kidsactivities": {"kids", "children", "family fun", "family activity", "kid zone"},
	"fairs":          {"fair", "carnival", "festival", "fun day"},
	"sports":         {"youth", "little league", "family day", "kids day"},
}

var keywordTables = map[Category]map[SubTag][]string{
	Music:     genreKeywords,
	Sports:    sportKeywords,
	Comedy:    comedyKeywords,
	Festivals: festivalKeywords,
	Theater:   theaterKeywords,
	Nightlife: nightlifeKeywords,
	Family:    familyKeywords,
}

// Venue-name heuristics shared across categories.

var smallVenueKeywords = []string{
	"bar",
	"pub",
	"club",
	"lounge",
	"tavern",
	"saloon",
	"grill",
	"taproom",
	"brewing",
	"brewery",
	"cafe",
	"café",
	"music hall",
}

var bigVenueKeywords = []string{
	"stadium",
	"arena",
	"center",
	"centre",
	"coliseum",
	"ampitheatre",
	"amphitheatre",
	"amphitheater",
	"ballpark",
	"field",
	"pavilion",
}
