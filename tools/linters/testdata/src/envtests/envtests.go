package envtests

func Port() int { return 8080 }
