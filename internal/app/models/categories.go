package models

// Categorical values students are synthesized from.
var (
	FirstNames = []string{
		"Fawaz", "Samuel", "Chidera", "David", "Emmanuel",
		"Feranmi", "Grace", "Zainab", "Deborah", "Faith",
	}

	Surnames = []string{
		"Offeh", "Johnson", "Arku", "Aro", "Akinyoola",
		"Ogunnowo", "Ogunnike", "Dare", "Brayan", "Ogabi",
	}

	// Localities are local government areas
	Localities = []string{"Lagos Island", "Surulere", "Oshodi", "Munshin", "Iyana Ipaja"}

	States = []string{"Lagos", "Ogun", "Oyo", "Delta", "Kwara", "Kano", "Kogi", "Anambra"}
)

// EmailDomain is appended to every synthesized student email
const EmailDomain = "lasu.edu"
