package catalog

// Default returns the compiled-in shelf.
func Default() *Catalog {
	return MustNew(
		Book{Title: "Sidd HARTHA", Author: "Hermann Hesse", ImageRef: "cover", Price: 2999},
		Book{Title: "Thirst", Author: "Varsha Bajaj for Penguin Random House.", ImageRef: "cover4", Price: 5999},
		Book{Title: "Lightning Strike", Author: "Tanya Landman", ImageRef: "lightning", Price: 2550},
		Book{Title: "Hide-and-Seek History: The Greeks", Author: "Jonny Marx", ImageRef: "greek", Price: 6996},
		Book{Title: "Hide-and-Seek History: The Egyptians", Author: "Jonny Marx", ImageRef: "egypt", Price: 199},
		Book{Title: "Bracelets for Bina's Brothers", Author: "Charlesbridge", ImageRef: "bracelets", Price: 299},
		Book{Title: "Fortress Blood", Author: "L. D. Goffigan", ImageRef: "cover2", Price: 699},
		Book{Title: "All this time", Author: "Mikki Daughtry", ImageRef: "cover3", Price: 799},
		Book{Title: "The Little Mermaid", Author: "Hans Christian Andersan", ImageRef: "cover5", Price: 1299},
		Book{Title: "Late Night Thoughts", Author: "Vee.", ImageRef: "cover6", Price: 9999},
	)
}
