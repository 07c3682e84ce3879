package nlp

// Seed reference sets, used whenever the catalog replica cannot provide
// fresher ones. Mirrors the curated lists the frontend shipped with.

var seedGenres = []string{
	"philosophical fiction",
	"historical",
	"thriller",
	"biography",
	"self-help",
	"dystopian",
	"horror",
	"adventure",
	"classic",
	"satire",
	"psychological drama",
	"philosophy",
	"Fiction",
	"Science Fiction",
	"Fantasy",
	"Mystery",
	"Biography",
	"History",
	"Romance",
	"Horror",
	"Self-Help",
	"Health",
	"Science",
	"Business",
	"Art",
	"Children",
	"Travel",
	"Religion",
	"Erotica",
}

var seedAuthors = []string{
	"Friedrich Nietzsche", "Fyodor Dostoyevsky", "Albert Camus", "Colleen Hoover",
	"Charles Bukowski", "Frank Herbert Hayward", "Marie Lu", "George Orwell", "J.K. Rowling",
	"Stephen King", "Leo Tolstoy", "Jane Austen", "Mark Twain Media", "Haruki Murakami",
	"Gabriel Garcia Marquez", "J.R.R. Tolkien", "Agatha Christie", "William Shakespeare",
	"Homer H. Hickam", "Ernest Hemingway", "Virginia Woolf", "Isaac Asimov", "John Steinbeck",
	"George R.R. Martin", "Kurt Vonnegut", "Toni Morrison", "H. G. Wells Society", "Ray Bradbury",
	"Douglas Adams", "Margaret Atwood", "Khaled Hosseini", "John Green", "F. Scott Fitzgerald",
	"Oscar Wilde", "Maya Angelou", "Arthur C. Clarke", "C.S. Lewis", "Joseph Conrad", "Dan Brown",
	"Emily Dickinson", "Vladimir Nabokov", "Sylvia Plath", "William Faulkner", "Jack Kerouac",
	"Herman Melville", "J.D. Salinger", "Charles Dickens", "Società Dante Alighieri", "Marcel Proust",
	"William Golding", "Chimamanda Ngozi Adichie", "Jodi Picoult", "James Patterson Jr.", "Neil Gaiman",
	"Danielle Steel", "Nicholas Sparks", "E.L. James", "Ken Follett", "Paulo Coelho Netto", "Harper Lee",
	"Lisa Gardner", "Patricia Cornwell", "Stephenie Meyer", "Richard Adams", "Ruth Ware", "Tom Clancy",
	"Elena Ferrante", "David Baldacci", "Anne Rice", "Dean Koontz", "Sandra Brown", "Karin Slaughter",
	"Michael Connelly", "Tana French", "Greg Iles", "Kate Morton", "Catherine Coulter", "Jeffrey Archer",
	"Lee Child", "John Grisham", "David Foster Wallace", "Michael Crichton", "Nelson De Mille", "David Mitchell",
	"Shirley Jackson", "Rachel Carson", "Margaret Mitchell", "Leonard Cohen", "Jack London", "Beryl Bainbridge",
	"Zadie Smith", "Ruth Rendell", "Alice Munro", "Elif Şafak", "Jamaica Kincaid", "Roald Dahl", "Walt Whitman",
	"Jean-Paul Sartre", "E.M. Forster", "James Joyce", "Dorothy Parker", "Henry James", "Caitlin Moran", "Philip K. Dick",
	"Ayn Rand", "Arthur Miller", "Harlan Coben", "Liane Moriarty", "Margaret Drabble", "William Somerset Maugham",
	"Christopher Marlowe", "Bram Stoker", "Mary Shelley", "Louise Erdrich", "Paul Auster",
}

// DefaultReferenceSets returns copies of the seed lists so callers cannot
// mutate the package-level slices.
func DefaultReferenceSets() ReferenceSets {
	genres := make([]string, len(seedGenres))
	copy(genres, seedGenres)

	authors := make([]string, len(seedAuthors))
	copy(authors, seedAuthors)

	return ReferenceSets{Genres: genres, Authors: authors}
}
