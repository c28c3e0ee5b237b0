package lexicon

import "lexis/internal/models"

// builtinCategories is the full context inventory. Trigger matching is
// whole-word, so inflected forms that matter are listed explicitly
// (e.g. both "click" and "clicked").
var builtinCategories = []models.ContextCategory{
	{
		Label: "programming",
		Triggers: []string{
			"code", "coding", "programming", "program", "software", "developer", "development",
			"function", "method", "variable", "loop", "syntax", "compile", "compiler",
			"script", "scripting", "debug", "debugging", "algorithm", "data structure",
			"object", "instance", "constructor", "inheritance", "polymorphism", "encapsulation",
			"api", "library", "framework", "module", "package", "import", "define", "defines",
			"object oriented", "oop", "ide", "editor", "terminal", "command line",
			"backend", "frontend", "fullstack", "web development", "app development",
			"machine learning", "ml", "ai", "artificial intelligence", "neural network",
			"database", "sql", "query", "server", "client", "http", "rest", "json", "xml",
			"git", "github", "version control", "repository", "commit", "branch", "merge",
			"exception", "error handling", "try", "catch", "throw", "return", "print",
			"array", "list", "dictionary", "tuple", "set", "string", "integer", "float", "boolean",
			"if statement", "for loop", "while loop", "switch", "case", "break",
			"selenium", "pytest", "unittest", "django", "flask", "react", "angular", "vue",
			"tensorflow", "pytorch", "pandas", "numpy", "scipy", "matplotlib",
		},
	},
	{
		Label: "tech_company",
		Triggers: []string{
			"launched", "iphone", "ipad", "macbook", "airpods", "apple watch",
			"google", "microsoft", "amazon prime", "facebook", "meta", "twitter",
			"samsung", "tesla", "spacex", "nvidia", "intel", "amd",
			"android", "ios", "windows", "macos", "chromebook", "pixel",
			"silicon valley", "tech giant", "big tech", "trillion dollar",
			"tim cook", "elon musk", "mark zuckerberg", "sundar pichai", "satya nadella",
		},
	},
	{
		Label: "biology",
		Triggers: []string{
			"animal", "species", "habitat", "wildlife", "zoo", "nature", "ecosystem",
			"reptile", "mammal", "bird", "insect", "snake", "predator", "prey",
			"forest", "jungle", "wild", "bite", "venom", "scales", "tail", "burrow",
			"rainforest", "rodent",
		},
	},
	{
		Label: "finance",
		Triggers: []string{
			"money", "deposit", "withdraw", "savings", "account", "loan", "interest",
			"mortgage", "credit", "debit", "transaction", "balance", "atm", "bank account",
			"financial", "investment", "stocks", "bonds", "portfolio",
		},
	},
	{
		Label: "food",
		Triggers: []string{
			"ate", "eat", "eating", "food", "fruit", "vegetable", "delicious", "tasty",
			"cook", "cooking", "recipe", "meal", "breakfast", "lunch", "dinner", "snack",
			"hungry", "bite", "chew", "swallow", "taste", "flavor", "sweet", "sour",
			"ripe", "fresh", "organic", "healthy", "nutritious", "diet", "juice",
			"pie", "salad", "dessert", "bake", "baking", "kitchen", "plate", "bowl",
			"orchard", "farm", "harvest", "grow",
			"seed", "skin", "peel", "slice", "chop", "blend", "smoothie",
		},
	},
	{
		Label: "entertainment",
		Triggers: []string{
			"tv", "television", "movie", "film", "show", "series", "episode", "channel",
			"netflix", "youtube", "stream", "streaming", "video", "cinema", "theater",
			"broadcast", "programme", "program", "documentary", "news", "sports",
			"viewing", "viewer", "audience", "screen", "remote", "couch", "sofa",
			"night", "evening", "weekend", "binge", "marathon", "premiere", "season",
			"actor", "actress", "director", "starring", "cast", "scene", "plot",
			"comedy", "drama", "thriller", "horror", "action", "romance", "cartoon",
			"anime", "sitcom", "reality", "game show", "talk show", "late night",
		},
	},
	{
		Label: "timepiece",
		Triggers: []string{
			"wrist", "wristwatch", "clock", "time", "hour", "minute", "second",
			"digital", "analog", "strap", "band", "dial", "face", "hands",
			"wearing", "wore", "timer", "stopwatch", "alarm", "bezel",
			"luxury", "rolex", "casio", "seiko", "omega", "jewelry", "accessory",
		},
	},
	{
		Label: "observation",
		Triggers: []string{
			"guard", "security", "monitor", "monitoring", "surveillance", "patrol",
			"building", "house", "property", "premises", "door", "entrance", "gate",
			"protect", "protection", "keep an eye", "lookout", "alert", "careful",
			"observe", "observing", "observation", "supervise", "supervision",
			"oversee", "inspect", "check", "survey", "scout", "spy",
			"child", "children", "kids", "baby", "toddler", "babysit", "babysitting",
			"pet", "dog", "cat", "prisoner", "suspect", "criminal",
			"night shift", "duty", "post", "station", "sentry", "vigilant",
		},
	},
	{
		Label: "fitness",
		Triggers: []string{
			"morning", "jog", "jogging", "exercise", "workout", "marathon", "sprint",
			"gym", "fitness", "athletic", "athlete", "training", "cardio", "aerobic",
			"mile", "kilometer", "distance", "race", "racing", "track", "field",
			"running shoes", "sneakers", "stretching", "warm up", "cool down",
			"healthy", "health", "sweat", "stamina", "endurance", "pace", "speed",
			"treadmill", "outdoor", "park", "trail", "route", "lap", "finish line",
			"goes for", "went for", "take a", "daily", "routine", "regularly",
		},
	},
	{
		Label: "business",
		Triggers: []string{
			"successfully", "manager", "managing", "management", "ceo", "director",
			"led", "lead", "leading", "founder", "founded", "owner", "ownership",
			"organization", "organisation", "corporation", "enterprise", "firm",
			"business", "startup", "employee", "staff", "team", "department",
			"profit", "revenue", "growth", "expand", "expansion", "strategy",
			"board", "executive", "operations", "administered", "oversaw",
			"headed", "supervised", "controlled", "governed", "steered",
		},
	},
	{
		Label: "emotion",
		Triggers: []string{
			"tears", "tear", "crying", "cry", "sob", "sobbing", "weep", "weeping",
			"cheek", "cheeks", "emotion", "emotional",
			"sad", "sadness", "happy", "happiness", "joy", "grief", "sorrow",
			"pain", "hurt", "heartbreak", "heartbroken", "moved", "touched",
			"down her", "down his", "down my", "down the", "began to", "started to",
			"flow", "flowing", "drip", "dripping", "trickle",
		},
	},
	{
		Label: "computer",
		Triggers: []string{
			"upload", "download", "document", "folder", "directory", "save", "open",
			"click", "clicked", "drag", "drop", "attach", "attachment", "email", "send",
			"computer", "laptop", "desktop", "storage", "disk", "drive", "usb",
			"pdf", "word", "excel", "image", "photo", "video", "audio", "mp3", "mp4",
			"zip", "compress", "extract", "rename", "delete", "copy", "paste",
			"share", "transfer", "submit", "format", "extension",
		},
	},
	{
		Label: "legal",
		Triggers: []string{
			"lawyer", "attorney", "court", "judge", "trial", "case", "lawsuit",
			"legal", "law", "filed", "filing", "petition", "motion", "hearing",
			"plaintiff", "defendant", "prosecution", "defense", "verdict", "judgment",
			"appeal", "testimony", "witness", "evidence", "affidavit", "subpoena",
			"litigation", "settlement", "damages", "claim", "complaint", "injunction",
			"magistrate", "barrister", "solicitor", "paralegal", "notary", "oath",
			"police", "thief", "arrest", "arrested", "crime", "criminal", "accused", "suspect",
		},
	},
	{
		Label: "tools",
		Triggers: []string{
			"wood", "smooth", "smoothen", "smoothened", "grind", "grinding",
			"sand", "sanding", "polish", "polishing", "shape", "shaping", "sharpen",
			"workshop", "workbench", "tool", "tools", "hand tool", "rasp", "chisel",
			"carpenter", "carpentry", "metalwork", "blacksmith", "forge", "craft",
			"edge", "edges", "rough", "surface", "material", "iron", "steel", "brass",
			"nail", "screw", "bolt",
		},
	},
	{
		Label: "season",
		Triggers: []string{
			"flowers", "flower", "bloom", "blooming", "blossom", "blossoming",
			"summer", "autumn", "fall", "winter", "seasonal", "season",
			"weather", "warm", "cold", "sunny", "rainy", "temperature",
			"months", "march", "april", "may", "june", "september", "october",
			"garden", "gardening", "planting", "seeds", "nature", "trees",
			"birds", "butterflies", "allergies", "pollen", "year",
		},
	},
	{
		Label: "water",
		Triggers: []string{
			"water", "flows", "flow", "flowing", "river", "stream", "creek",
			"lake", "pond", "well", "underground", "aquifer", "source",
			"drink", "drinking", "fresh", "mineral", "natural", "bubbling",
			"fountain", "hot springs", "thermal", "geothermal", "geyser",
			"bottle", "bottled", "pure", "clean", "clear", "shore", "riverbank",
		},
	},
	{
		Label: "mechanical",
		Triggers: []string{
			"toy", "toys", "coil", "bounce", "bouncing", "elastic",
			"mechanism", "mechanical", "device", "mattress", "bed",
			"suspension", "shock absorber", "tension", "compress",
			"compressed", "stretch", "stretched", "force", "pressure", "push", "pull",
			"jump", "jumping", "trampoline", "pen", "button", "loaded",
		},
	},
	{
		Label: "construction",
		Triggers: []string{
			"lifted", "lifting", "lift", "heavy", "load", "loading", "container", "containers",
			"construction", "site", "building", "tower", "tall", "height",
			"equipment", "machinery", "operator", "hoist", "hook", "cable", "wire",
			"cargo", "shipyard", "port", "dock", "warehouse", "factory",
			"move", "moving", "transport", "haul", "weight", "tons", "industrial",
		},
	},
	{
		Label: "bird",
		Triggers: []string{
			"flew", "fly", "flying", "flight", "wings", "wing", "feathers", "feather",
			"nest", "nesting", "eggs", "beak", "migrate", "migration", "migratory",
			"lake", "pond", "wetland", "marsh", "swamp", "habitat",
			"bird", "birds", "avian", "flock", "soar", "soaring", "glide", "graceful",
			"wildlife", "nature", "sanctuary", "endangered", "species",
		},
	},
	{
		Label: "electrical",
		Triggers: []string{
			"phone", "battery", "batteries", "plug", "plugged", "charger", "charging",
			"power", "electric", "electrical", "outlet", "socket", "usb", "cable",
			"laptop", "device", "wireless", "adapter", "volt", "voltage", "amp",
			"dead", "low", "full", "percentage", "rechargeable", "lithium",
		},
	},
	{
		Label: "payment",
		Triggers: []string{
			"service", "fee", "fees", "cost", "price", "pay", "payment", "free",
			"no charge", "extra", "additional", "bill", "invoice", "receipt",
			"discount", "rate", "flat rate", "per hour", "monthly", "annual",
			"subscription", "membership", "premium", "basic", "refund",
		},
	},
	{
		Label: "military",
		Triggers: []string{
			"soldiers", "soldier", "army", "troops", "military", "battle", "war",
			"forward", "attack", "attacking", "advance", "advancing", "rush", "rushing",
			"enemy", "combat", "fight", "fighting", "battlefield", "front line",
			"cavalry", "infantry", "retreat", "assault", "offensive", "defense",
			"began to", "started to", "ordered to", "commanded",
		},
	},
	{
		Label: "writing",
		Triggers: []string{
			"wrote", "write", "writing", "written", "letter", "message", "memo",
			"paper", "pen", "pencil", "jot", "jotted", "scribble", "scribbled",
			"sticky", "post it", "reminder", "journal", "diary", "notebook",
			"left a", "leave a", "send a", "passed a", "handed a", "read a",
		},
	},
	{
		Label: "music",
		Triggers: []string{
			"musical", "music", "song", "songs", "melody", "tune",
			"sing", "singing", "sang", "instrument",
			"piano", "guitar", "violin", "flute", "orchestra", "choir",
			"high note", "low note", "flat note", "sharp note", "scale", "octave",
			"sound", "sounds", "tone", "tones", "frequency", "high pitch", "low pitch",
		},
	},
	{
		Label: "education",
		Triggers: []string{
			"math", "mathematics", "science", "history", "english", "physics", "chemistry",
			"biology", "geography", "economics", "literature", "school", "college", "university",
			"teacher", "professor", "student", "students", "classroom", "lecture", "lesson",
			"exam", "test", "homework", "assignment", "grade", "grades", "semester", "course",
		},
	},
	{
		Label: "currency",
		Triggers: []string{
			"rupee", "rupees", "dollar", "dollars", "euro", "euros",
			"pound", "pounds", "yen", "cash", "money", "currency",
			"banknote", "bill", "bills", "100", "500", "1000", "2000", "50", "20",
			"gave me", "handed me", "paid", "change", "wallet", "pocket", "purse",
		},
	},
	{
		Label: "industrial",
		Triggers: []string{
			"factory", "factories", "power", "manufacturing", "production", "assembly",
			"nuclear", "thermal", "electricity", "generator", "turbine", "energy",
			"industrial", "industry", "processing", "refinery", "chemical", "steel",
			"cement", "textile", "automobile", "machinery", "facility", "facilities",
		},
	},
	{
		Label: "botany",
		Triggers: []string{
			"watered", "water", "watering", "grow", "growing", "grew", "growth",
			"flower", "flowers", "flowering", "leaf", "leaves", "root", "roots",
			"soil", "pot", "potted", "garden", "gardening", "greenhouse", "sunlight",
			"seed", "seeds", "stem", "branch", "branches", "tree", "trees", "shrub",
			"green", "vegetation", "photosynthesis", "fertilizer", "indoor", "outdoor",
		},
	},
	{
		Label: "spy",
		Triggers: []string{
			"spy", "spies", "spying", "undercover", "secret", "secrets", "agent",
			"infiltrate", "infiltrated", "infiltration", "mole", "double agent",
			"insider", "informant", "informer", "traitor", "betrayal",
			"organization", "gang", "cartel", "intelligence", "cia", "fbi",
			"mission", "covert", "operation", "surveillance", "planted",
		},
	},
	{
		Label: "sports",
		Triggers: []string{
			"ball", "balls", "pitched", "throw", "throwing", "threw", "catch", "catching",
			"baseball", "cricket", "bowling", "bowled", "batter", "batsman", "wicket",
			"game", "games", "match", "matches", "player", "players", "team", "teams",
			"stadium", "field", "innings", "score", "runs", "home run", "strike", "out",
			"sport", "sports", "athletic", "athlete", "coach", "practice",
		},
	},
	{
		Label: "sales",
		Triggers: []string{
			"sales", "impressive", "presentation", "client", "clients", "customer", "customers",
			"business", "deal", "deals", "proposal", "marketing", "advertising", "product",
			"convince", "persuade", "meeting", "investor", "investors", "startup", "venture",
			"elevator pitch", "shark tank", "funding", "investment", "sell", "selling",
		},
	},
	{
		Label: "terrain",
		Triggers: []string{
			"tent", "tents", "flat", "ground", "camping", "camp", "campsite",
			"set up", "setup", "level", "even", "uneven", "slope", "sloped",
			"grass", "grassy", "outdoor", "outdoors", "terrain", "surface",
			"football pitch", "soccer pitch", "cricket pitch", "playing field",
		},
	},
	{
		Label: "social",
		Triggers: []string{
			"upper class", "lower class", "middle class", "working class", "upper", "lower",
			"wealthy", "rich", "poor", "poverty", "elite", "aristocrat", "aristocracy",
			"noble", "nobility", "royal", "royalty", "commoner", "peasant", "bourgeois",
			"status", "hierarchy", "society", "belongs to", "born into", "privilege",
		},
	},
	{
		Label: "insect",
		Triggers: []string{
			"crawling", "crawl", "crawled", "wall", "floor", "ceiling", "window",
			"ant", "ants", "spider", "spiders", "beetle", "cockroach", "fly", "flies",
			"mosquito", "butterfly", "moth", "insect", "insects", "pest", "pests",
			"legs", "wings", "antenna", "bite", "bitten", "sting", "stung", "squash",
		},
	},
	{
		Label: "surveillance",
		Triggers: []string{
			"hidden", "microphone", "wiretap", "listening", "recording", "secretly",
			"planted", "device", "spy", "spying", "surveillance", "eavesdrop", "tap",
			"room", "office", "phone", "conversation", "detected", "sweep", "found",
		},
	},
	{
		Label: "fashion",
		Triggers: []string{
			"fashion", "runway", "ramp", "photoshoot", "photo shoot", "photographer",
			"pose", "posing", "beautiful", "gorgeous", "supermodel", "catwalk",
			"magazine", "vogue", "designer", "modeling", "modelling", "agency",
			"portfolio", "commercial", "advertisement", "ad", "campaign",
		},
	},
	{
		Label: "product",
		Triggers: []string{
			"car", "cars", "vehicle", "vehicles", "automobile", "bike", "motorcycle",
			"new model", "latest", "version", "year", "brand", "make", "manufacturer",
			"features", "specs", "specifications", "engine", "horsepower", "mileage",
			"release", "launched", "introduced", "upgraded", "improved", "design",
		},
	},
}
