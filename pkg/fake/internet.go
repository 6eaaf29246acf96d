package fake

var tlds = []string{"com", "dev", "io", "net", "org"}

// Domain returns a random domain name like "meadow.io".
func Domain() string {
	return Word() + "." + pick(tlds)
}

// Email returns a random address like "clara382@meadow.io".
func Email() string {
	return Username() + "@" + Domain()
}

// URL returns a random https URL with a two-word slug path.
func URL() string {
	return "https://" + Domain() + "/" + Slug(2)
}
