package lexicon

import "lexis/internal/models"

// builtinWords is the supported ambiguous-word inventory. Sense order is
// load-bearing: the first sense is the zero-evidence fallback and earlier
// senses win score ties, so reordering entries changes behavior.
var builtinWords = []models.AmbiguousWord{
	{
		Word: "python",
		Senses: []models.SenseEntry{
			{Context: "programming", Gloss: "a high-level, general-purpose programming language known for its readable syntax", SearchTerms: []string{"Python (programming language)", "Python programming"}},
			{Context: "biology", Gloss: "a large non-venomous constricting snake of the family Pythonidae", SearchTerms: []string{"Python (genus)", "Pythonidae snake"}},
		},
	},
	{
		Word: "java",
		Senses: []models.SenseEntry{
			{Context: "programming", Gloss: "an object-oriented programming language that runs on the Java Virtual Machine", SearchTerms: []string{"Java (programming language)", "Java software platform"}},
		},
	},
	{
		Word: "watch",
		Senses: []models.SenseEntry{
			{Context: "entertainment", Gloss: "to view a screen, show, or performance attentively", SearchTerms: []string{"Television", "Watching television", "Viewer (television)"}},
			{Context: "observation", Gloss: "to keep guard over or observe someone or something", SearchTerms: []string{"Observation", "Surveillance", "Security guard"}},
			{Context: "timepiece", Gloss: "a small timekeeping device worn on the wrist", SearchTerms: []string{"Watch", "Wristwatch", "Timepiece"}},
		},
	},
	{
		Word: "run",
		Senses: []models.SenseEntry{
			{Context: "fitness", Gloss: "to move quickly on foot; to exercise by running", SearchTerms: []string{"Running", "Jogging", "Exercise"}},
			{Context: "programming", Gloss: "to execute a program or command", SearchTerms: []string{"Execution (computing)", "Run command", "Computer program execution"}},
			{Context: "business", Gloss: "to manage or operate an organization", SearchTerms: []string{"Management", "Business operations", "Corporate governance"}},
			{Context: "emotion", Gloss: "to flow or stream, as tears down a face", SearchTerms: []string{"Crying", "Tears", "Weeping"}},
		},
	},
	{
		Word: "ran",
		Senses: []models.SenseEntry{
			{Context: "fitness", Gloss: "moved quickly on foot; exercised by running", SearchTerms: []string{"Running", "Jogging", "Exercise"}},
			{Context: "programming", Gloss: "executed a program or command", SearchTerms: []string{"Execution (computing)", "Run command", "Computer program execution"}},
			{Context: "business", Gloss: "managed or operated an organization", SearchTerms: []string{"Management", "Business operations", "Corporate governance"}},
			{Context: "emotion", Gloss: "flowed or streamed, as tears down a face", SearchTerms: []string{"Crying", "Tears", "Weeping"}},
		},
	},
	{
		Word: "company",
		Senses: []models.SenseEntry{
			{Context: "business", Gloss: "a commercial organization; a business enterprise", SearchTerms: []string{"Company", "Business organization", "Corporation"}},
			{Context: "tech_company", Gloss: "a technology-sector corporation", SearchTerms: []string{"Technology company", "Tech company"}},
		},
	},
	{
		Word: "file",
		Senses: []models.SenseEntry{
			{Context: "computer", Gloss: "a named collection of data stored on a computer", SearchTerms: []string{"Computer file", "Digital file", "File (computing)"}},
			{Context: "legal", Gloss: "to submit a document to a court or official record", SearchTerms: []string{"Legal filing", "Court filing", "File (legal)"}},
			{Context: "tools", Gloss: "a hand tool with a ridged surface for smoothing or shaping material", SearchTerms: []string{"File (tool)", "Hand file", "Metalworking file"}},
		},
	},
	{
		Word: "mouse",
		Senses: []models.SenseEntry{
			{Context: "computer", Gloss: "a hand-held pointing device for controlling a computer cursor", SearchTerms: []string{"Computer mouse", "Mouse (computing)", "Input device"}},
			{Context: "biology", Gloss: "a small rodent with a pointed snout and long tail", SearchTerms: []string{"Mouse", "House mouse", "Mus musculus"}},
		},
	},
	{
		Word: "spring",
		Senses: []models.SenseEntry{
			{Context: "season", Gloss: "the season between winter and summer", SearchTerms: []string{"Spring (season)", "Springtime", "Spring season"}},
			{Context: "water", Gloss: "a natural flow of groundwater emerging at the surface", SearchTerms: []string{"Spring (hydrology)", "Natural spring", "Water spring"}},
			{Context: "mechanical", Gloss: "an elastic coiled device that stores mechanical energy", SearchTerms: []string{"Spring (device)", "Coil spring", "Mechanical spring"}},
		},
	},
	{
		Word: "crane",
		Senses: []models.SenseEntry{
			{Context: "construction", Gloss: "a machine for lifting and moving heavy loads", SearchTerms: []string{"Crane (machine)", "Construction crane", "Tower crane"}},
			{Context: "bird", Gloss: "a tall long-legged wading bird of the family Gruidae", SearchTerms: []string{"Crane (bird)", "Gruidae", "Crane bird"}},
		},
	},
	{
		Word: "charge",
		Senses: []models.SenseEntry{
			{Context: "legal", Gloss: "a formal accusation of an offense", SearchTerms: []string{"Criminal charge", "Legal charge", "Indictment"}},
			{Context: "electrical", Gloss: "to supply electrical energy to a battery or device", SearchTerms: []string{"Battery charging", "Electric charge", "Charging battery"}},
			{Context: "payment", Gloss: "a price or fee asked for goods or services", SearchTerms: []string{"Fee", "Service charge", "Price"}},
			{Context: "military", Gloss: "a rushing attack toward an enemy", SearchTerms: []string{"Charge (warfare)", "Military charge", "Cavalry charge"}},
		},
	},
	{
		Word: "note",
		Senses: []models.SenseEntry{
			{Context: "writing", Gloss: "a brief written message or record", SearchTerms: []string{"Note (typography)", "Written note", "Memorandum"}},
			{Context: "music", Gloss: "a musical sound of definite pitch", SearchTerms: []string{"Musical note", "Note (music)", "Pitch (music)"}},
			{Context: "currency", Gloss: "a piece of paper money; a banknote", SearchTerms: []string{"Banknote", "Currency note", "Paper money"}},
		},
	},
	{
		Word: "plant",
		Senses: []models.SenseEntry{
			{Context: "industrial", Gloss: "a factory or facility for industrial production", SearchTerms: []string{"Power plant", "Industrial plant", "Factory"}},
			{Context: "botany", Gloss: "a living organism that typically grows in soil and photosynthesizes", SearchTerms: []string{"Plant", "Flowering plant", "Houseplant"}},
			{Context: "spy", Gloss: "a person placed covertly inside an organization", SearchTerms: []string{"Sleeper agent", "Undercover agent", "Mole (espionage)"}},
		},
	},
	{
		Word: "pitch",
		Senses: []models.SenseEntry{
			{Context: "sports", Gloss: "a throw of the ball toward the batter; a delivery in cricket or baseball", SearchTerms: []string{"Pitch (baseball)", "Pitching (baseball)", "Bowling (cricket)"}},
			{Context: "sales", Gloss: "a persuasive presentation intended to sell or win backing", SearchTerms: []string{"Sales pitch", "Elevator pitch", "Business pitch"}},
			{Context: "terrain", Gloss: "a marked playing field for an outdoor sport", SearchTerms: []string{"Pitch (sports field)", "Football pitch", "Playing field"}},
			{Context: "music", Gloss: "the perceived highness or lowness of a sound", SearchTerms: []string{"Pitch (music)", "Audio frequency", "Sound pitch"}},
		},
	},
	{
		Word: "class",
		Senses: []models.SenseEntry{
			{Context: "programming", Gloss: "a template defining the data and behavior of objects", SearchTerms: []string{"Class (computer programming)", "Object-oriented programming class"}},
			{Context: "education", Gloss: "a group of students taught together; a scheduled lesson", SearchTerms: []string{"Class (education)", "School class", "Classroom"}},
			{Context: "social", Gloss: "a stratum of society sharing economic or social status", SearchTerms: []string{"Social class", "Class system", "Social stratification"}},
		},
	},
	{
		Word: "bug",
		Senses: []models.SenseEntry{
			{Context: "programming", Gloss: "a defect in software that causes incorrect behavior", SearchTerms: []string{"Software bug", "Bug (software)", "Programming error"}},
			{Context: "insect", Gloss: "a small insect or similar crawling creature", SearchTerms: []string{"Insect", "Bug (insect)", "True bugs"}},
			{Context: "surveillance", Gloss: "a concealed listening device", SearchTerms: []string{"Covert listening device", "Wiretap", "Surveillance device"}},
		},
	},
	{
		Word: "model",
		Senses: []models.SenseEntry{
			{Context: "programming", Gloss: "a trained statistical or machine-learning representation of data", SearchTerms: []string{"Machine learning model", "AI model", "Statistical model"}},
			{Context: "fashion", Gloss: "a person employed to display clothing or pose for media", SearchTerms: []string{"Model (person)", "Fashion model", "Supermodel"}},
			{Context: "product", Gloss: "a particular design or version of a manufactured product", SearchTerms: []string{"Model (product)", "Product model", "Vehicle model"}},
		},
	},
	{
		Word: "apple",
		Senses: []models.SenseEntry{
			{Context: "tech_company", Gloss: "the American consumer-electronics company Apple Inc.", SearchTerms: []string{"Apple Inc.", "Apple (company)"}},
			{Context: "food", Gloss: "the round edible fruit of the apple tree", SearchTerms: []string{"Apple", "Apple fruit"}},
			{Context: "biology", Gloss: "the fruit-bearing tree Malus domestica", SearchTerms: []string{"Apple", "Apple fruit"}},
		},
	},
	{
		Word: "amazon",
		Senses: []models.SenseEntry{
			{Context: "tech_company", Gloss: "the American e-commerce and cloud-computing company Amazon.com", SearchTerms: []string{"Amazon (company)", "Amazon.com"}},
			{Context: "biology", Gloss: "the South American river and the rainforest surrounding it", SearchTerms: []string{"Amazon River", "Amazon rainforest"}},
		},
	},
	{
		Word: "bank",
		Senses: []models.SenseEntry{
			{Context: "finance", Gloss: "a financial institution that accepts deposits and makes loans", SearchTerms: []string{"Bank", "Financial institution"}},
			{Context: "water", Gloss: "the sloping land alongside a river or lake", SearchTerms: []string{"River bank", "Stream bank"}},
		},
	},
	{
		Word: "tree",
		Senses: []models.SenseEntry{
			{Context: "programming", Gloss: "a hierarchical data structure of linked nodes", SearchTerms: []string{"Tree (data structure)", "Binary tree"}},
			{Context: "biology", Gloss: "a tall woody perennial plant with a trunk and branches", SearchTerms: []string{"Tree", "Woody plant"}},
		},
	},
	{
		Word: "shell",
		Senses: []models.SenseEntry{
			{Context: "programming", Gloss: "a command-line interpreter for interacting with an operating system", SearchTerms: []string{"Shell (computing)", "Unix shell", "Command-line interface"}},
			{Context: "biology", Gloss: "the hard protective outer covering of an animal", SearchTerms: []string{"Shell (biology)", "Seashell"}},
		},
	},
	{
		Word: "branch",
		Senses: []models.SenseEntry{
			{Context: "programming", Gloss: "an independent line of development in version control", SearchTerms: []string{"Branching (version control)", "Git branch"}},
			{Context: "biology", Gloss: "a woody limb growing from the trunk of a tree", SearchTerms: []string{"Branch (botany)", "Tree branch"}},
		},
	},
	{
		Word: "string",
		Senses: []models.SenseEntry{
			{Context: "programming", Gloss: "a sequence of characters treated as data", SearchTerms: []string{"String (computer science)", "Character string"}},
			{Context: "music", Gloss: "a stretched cord on an instrument that produces sound when vibrated", SearchTerms: []string{"String instrument", "Guitar string"}},
		},
	},

	// Single-sense programming vocabulary. These resolve trivially; the sense
	// table still drives the lookup hint.
	{Word: "object", Senses: []models.SenseEntry{{Context: "programming", Gloss: "an instance of a class combining state and behavior", SearchTerms: []string{"Object (computer science)", "Object-oriented programming"}}}},
	{Word: "function", Senses: []models.SenseEntry{{Context: "programming", Gloss: "a named, reusable block of code that performs a computation", SearchTerms: []string{"Function (computer programming)", "Subroutine"}}}},
	{Word: "method", Senses: []models.SenseEntry{{Context: "programming", Gloss: "a function bound to an object or class", SearchTerms: []string{"Method (computer programming)", "Object-oriented method"}}}},
	{Word: "variable", Senses: []models.SenseEntry{{Context: "programming", Gloss: "a named storage location whose value can change", SearchTerms: []string{"Variable (computer science)", "Programming variable"}}}},
	{Word: "loop", Senses: []models.SenseEntry{{Context: "programming", Gloss: "a control structure that repeats a block of code", SearchTerms: []string{"Loop (programming)", "Control flow loop"}}}},
	{Word: "array", Senses: []models.SenseEntry{{Context: "programming", Gloss: "an ordered collection of elements addressed by index", SearchTerms: []string{"Array (data structure)", "Array data type"}}}},
	{Word: "stack", Senses: []models.SenseEntry{{Context: "programming", Gloss: "a last-in, first-out collection of elements", SearchTerms: []string{"Stack (abstract data type)", "Call stack"}}}},
	{Word: "queue", Senses: []models.SenseEntry{{Context: "programming", Gloss: "a first-in, first-out collection of elements", SearchTerms: []string{"Queue (abstract data type)", "FIFO queue"}}}},
	{Word: "socket", Senses: []models.SenseEntry{{Context: "programming", Gloss: "an endpoint for sending and receiving data across a network", SearchTerms: []string{"Network socket", "Socket (computing)"}}}},
	{Word: "patch", Senses: []models.SenseEntry{{Context: "programming", Gloss: "a set of changes applied to software to fix or update it", SearchTerms: []string{"Patch (computing)", "Software patch"}}}},
	{Word: "merge", Senses: []models.SenseEntry{{Context: "programming", Gloss: "to combine changes from divergent lines of development", SearchTerms: []string{"Merge (version control)", "Git merge"}}}},
	{Word: "commit", Senses: []models.SenseEntry{{Context: "programming", Gloss: "a recorded snapshot of changes in version control", SearchTerms: []string{"Commit (version control)", "Git commit"}}}},
	{Word: "repository", Senses: []models.SenseEntry{{Context: "programming", Gloss: "a storage location for source code under version control", SearchTerms: []string{"Repository (version control)", "Software repository"}}}},
	{Word: "docker", Senses: []models.SenseEntry{{Context: "programming", Gloss: "a platform for packaging and running applications in containers", SearchTerms: []string{"Docker (software)", "Docker container platform"}}}},
	{Word: "kubernetes", Senses: []models.SenseEntry{{Context: "programming", Gloss: "an orchestration system for deploying and scaling containers", SearchTerms: []string{"Kubernetes", "Container orchestration"}}}},
	{Word: "lambda", Senses: []models.SenseEntry{{Context: "programming", Gloss: "an anonymous function defined inline", SearchTerms: []string{"Anonymous function", "Lambda calculus"}}}},
}
