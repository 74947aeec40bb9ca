package identity

// nameSet holds the name and email tables for one locale.
type nameSet struct {
	maleFirst   []string
	femaleFirst []string
	last        []string
	domains     []string
}

var english = nameSet{
	maleFirst: []string{
		"James", "John", "Robert", "Michael", "William", "David", "Richard", "Joseph",
		"Thomas", "Charles", "Christopher", "Daniel", "Matthew", "Anthony", "Mark",
		"Donald", "Steven", "Paul", "Andrew", "Joshua", "Kenneth", "Kevin", "Brian",
		"George", "Timothy", "Ronald", "Edward", "Jason", "Jeffrey", "Ryan",
		"Jacob", "Gary", "Nicholas", "Eric", "Jonathan", "Stephen", "Larry", "Justin",
		"Scott", "Brandon", "Benjamin", "Samuel", "Raymond", "Gregory", "Frank",
		"Patrick", "Jack", "Dennis", "Jerry", "Tyler", "Aaron", "Adam", "Nathan",
		"Henry", "Douglas", "Peter", "Kyle", "Noah", "Ethan", "Walter", "Owen",
	},
	femaleFirst: []string{
		"Mary", "Patricia", "Jennifer", "Linda", "Barbara", "Elizabeth", "Susan", "Jessica",
		"Sarah", "Karen", "Lisa", "Nancy", "Betty", "Margaret", "Sandra", "Ashley",
		"Kimberly", "Emily", "Donna", "Michelle", "Dorothy", "Carol", "Amanda", "Melissa",
		"Deborah", "Stephanie", "Rebecca", "Sharon", "Laura", "Cynthia", "Kathleen", "Amy",
		"Angela", "Shirley", "Anna", "Brenda", "Pamela", "Emma", "Nicole", "Helen",
		"Samantha", "Katherine", "Christine", "Rachel", "Carolyn", "Janet", "Catherine",
		"Maria", "Heather", "Diane", "Ruth", "Julie", "Olivia", "Victoria", "Grace",
	},
	last: []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
		"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
		"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
		"Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
		"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
		"Carter", "Roberts", "Phillips", "Evans", "Turner", "Parker", "Collins", "Stewart",
		"Morris", "Murphy", "Cook", "Rogers", "Morgan", "Cooper", "Peterson", "Bailey",
	},
	domains: []string{
		"example.com", "example.org", "example.net", "mail.test", "inbox.test",
	},
}

var french = nameSet{
	maleFirst: []string{
		"Jean", "Pierre", "Michel", "André", "Philippe", "Alain", "Bernard", "Jacques",
		"François", "Christian", "Daniel", "Patrick", "Nicolas", "Olivier", "Laurent",
		"Thierry", "Stéphane", "Éric", "David", "Julien", "Christophe", "Pascal",
		"Sébastien", "Marc", "Vincent", "Antoine", "Alexandre", "Maxime", "Thomas",
		"Lucas", "Hugo", "Louis", "Arthur", "Gabriel", "Raphaël", "Paul", "Jules",
	},
	femaleFirst: []string{
		"Marie", "Nathalie", "Isabelle", "Sylvie", "Catherine", "Françoise", "Valérie",
		"Christine", "Monique", "Sophie", "Patricia", "Martine", "Nicole", "Sandrine",
		"Stéphanie", "Céline", "Julie", "Aurélie", "Caroline", "Laurence", "Émilie",
		"Claire", "Anne", "Camille", "Laura", "Sarah", "Manon", "Emma", "Léa",
	},
	last: []string{
		"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit",
		"Durand", "Leroy", "Moreau", "Simon", "Laurent", "Lefebvre", "Michel",
		"Garcia", "David", "Bertrand", "Roux", "Vincent", "Fournier", "Morel",
		"Girard", "André", "Lefevre", "Mercier", "Dupont", "Lambert", "Bonnet",
		"Legrand", "Garnier", "Faure", "Rousseau", "Blanc", "Guerin", "Muller",
	},
	domains: []string{
		"exemple.fr", "exemple.test", "courriel.test", "boite.test",
	},
}

// email local parts are built from ASCII words only so they stay valid
// regardless of locale.
var emailWords = []string{
	"swift", "bold", "calm", "dark", "keen", "wild", "warm", "cool",
	"deep", "tall", "wide", "soft", "pure", "rare", "safe", "fair",
	"blue", "gray", "jade", "ruby", "sage", "teal", "aqua", "mint",
	"dusk", "dawn", "moon", "star", "fern", "reed", "snow", "rain",
	"wolf", "hawk", "bear", "deer", "lynx", "fox", "owl", "crow",
	"wren", "dove", "lark", "swan", "hare", "seal", "orca", "kite",
	"cliff", "ridge", "brook", "grove", "marsh", "field", "stone", "cedar",
}
