package books

// SampleCatalog returns the built-in demonstration catalog used when no
// catalog file is supplied.
func SampleCatalog() Catalog {
	return NewCatalog([]Book{
		{ISBN: "9781785150289", Title: "Go Set a Watchman", Author: "Harper Lee", Price: 9.89},
		{ISBN: "9780744016697", Title: "The Legend of Zelda: Tri Force Heroes", Author: "Prima Games", Price: 14.99},
		{ISBN: "9780099529126", Title: "Catch-22", Author: "Joseph Heller", Price: 6.29},
		{ISBN: "9780007447831", Title: "A Clash of Kings", Author: "George R. R. Martin", Price: 4.95},
		{ISBN: "9781853260001", Title: "Pride and Prejudice", Author: "Jane Austin", Price: 1.99},
		{ISBN: "9780099576853", Title: "Casino Royale", Author: "Ian Fleming", Price: 6.79},
		{ISBN: "9780099549482", Title: "To Kill a Mockingbird", Author: "Harper Lee", Price: 4.99},
		{ISBN: "9780333998667", Title: "Fundamentals of Computer Architecture", Author: "Mark Burrell", Price: 41.10},
		{ISBN: "9780701189358", Title: "Simply Nigella: Feel Good Food", Author: "Nigella Lawson", Price: 12.50},
	})
}
