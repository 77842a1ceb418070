package sqlite

import "github.com/echolens-labs/echolens/internal/core/domain"

// seedSongs is the curated catalog inserted on first start. It doubles as
// the quiz pool and the local fallback source when the live catalog is
// unreachable.
var seedSongs = []domain.CatalogSong{
	{
		ID:       "4uLU6hMCjMI75M1A2tKUQC",
		Title:    "Anti-Hero",
		Artist:   "Taylor Swift",
		Album:    "Midnights",
		Genres:   []string{"pop", "indie pop"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b273bb54dde68cd23e2a268ae0f5",
		Features: domain.AudioFeatures{Valence: 0.321, Energy: 0.513, Danceability: 0.579, Acousticness: 0.257, Instrumentalness: 0.000001, Speechiness: 0.05, Tempo: 96.881},
	},
	{
		ID:       "1BxfuPKGuaTgP7aM0Bbdwr",
		Title:    "Cruel Summer",
		Artist:   "Taylor Swift",
		Album:    "Lover",
		Genres:   []string{"pop", "synth-pop"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b273e787cffec20aa2a396a61647",
		Features: domain.AudioFeatures{Valence: 0.564, Energy: 0.702, Danceability: 0.552, Acousticness: 0.117, Instrumentalness: 0.000096, Speechiness: 0.05, Tempo: 169.994},
	},
	{
		ID:       "4Dvkj6JhhA12EX05fT7y2e",
		Title:    "As It Was",
		Artist:   "Harry Styles",
		Album:    "Harry's House",
		Genres:   []string{"pop", "art pop"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b2732e8ed79e177ff6011076f5f0",
		Features: domain.AudioFeatures{Valence: 0.359, Energy: 0.549, Danceability: 0.685, Acousticness: 0.361, Instrumentalness: 0.000003, Speechiness: 0.05, Tempo: 108.009},
	},
	{
		ID:       "7qiZfU4dY1lWllzX7mPBI3",
		Title:    "Shape of You",
		Artist:   "Ed Sheeran",
		Album:    "÷ (Divide)",
		Genres:   []string{"pop", "dance pop"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b273ba5db46f4b838ef6027e6f96",
		Features: domain.AudioFeatures{Valence: 0.931, Energy: 0.652, Danceability: 0.825, Acousticness: 0.581, Instrumentalness: 0.000002, Speechiness: 0.08, Tempo: 95.977},
	},
	{
		ID:       "0VjIjW4GlULA4LGy1nby9d",
		Title:    "Bohemian Rhapsody",
		Artist:   "Queen",
		Album:    "A Night at the Opera",
		Genres:   []string{"rock", "classic rock"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b273e319baafd16e84f0408af2a0",
		Features: domain.AudioFeatures{Valence: 0.579, Energy: 0.618, Danceability: 0.495, Acousticness: 0.213, Instrumentalness: 0.001, Speechiness: 0.05, Tempo: 144.077},
	},
	{
		ID:       "4VqPOruhp5EdPBeR92t6lQ",
		Title:    "Stairway to Heaven",
		Artist:   "Led Zeppelin",
		Album:    "Led Zeppelin IV",
		Genres:   []string{"rock", "hard rock"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b2732ac77543e4dd391bfb3a93b6",
		Features: domain.AudioFeatures{Valence: 0.446, Energy: 0.541, Danceability: 0.378, Acousticness: 0.309, Instrumentalness: 0.274, Speechiness: 0.03, Tempo: 81.995},
	},
	{
		ID:       "0JiV5NKJP0vC8hOJKWMJ7y",
		Title:    "Don't Stop Believin'",
		Artist:   "Journey",
		Album:    "Escape",
		Genres:   []string{"rock", "arena rock"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b2732e77e624a0225686f4e62af6",
		Features: domain.AudioFeatures{Valence: 0.899, Energy: 0.736, Danceability: 0.563, Acousticness: 0.00131, Instrumentalness: 0.000014, Speechiness: 0.04, Tempo: 119.069},
	},
	{
		ID:       "6DCZcSspjsKoFjzjrWoCdn",
		Title:    "God's Plan",
		Artist:   "Drake",
		Album:    "Scorpion",
		Genres:   []string{"hip hop", "pop rap"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b273f907de96b9a4fbc04accc0d5",
		Features: domain.AudioFeatures{Valence: 0.357, Energy: 0.449, Danceability: 0.754, Acousticness: 0.00685, Instrumentalness: 0.000001, Speechiness: 0.109, Tempo: 77.169},
	},
	{
		ID:       "7ouMYWpwJ422jRcDASZB7P",
		Title:    "HUMBLE.",
		Artist:   "Kendrick Lamar",
		Album:    "DAMN.",
		Genres:   []string{"hip hop", "conscious rap"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b2738b52c6b9bc4e43d873869699",
		Features: domain.AudioFeatures{Valence: 0.421, Energy: 0.621, Danceability: 0.904, Acousticness: 0.000548, Instrumentalness: 0.000024, Speechiness: 0.102, Tempo: 150.02},
	},
	{
		ID:       "5W3cjX2J3tjhG8zb6u0qHn",
		Title:    "Old Town Road",
		Artist:   "Lil Nas X",
		Album:    "7 EP",
		Genres:   []string{"hip hop", "country rap"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b273a5c40298ab23da2ac819f9ab",
		Features: domain.AudioFeatures{Valence: 0.687, Energy: 0.555, Danceability: 0.876, Acousticness: 0.132, Instrumentalness: 0.000003, Speechiness: 0.097, Tempo: 136.041},
	},
	{
		ID:       "4Y7KDMX07MCuZo10LPW60s",
		Title:    "Clarity",
		Artist:   "Zedd",
		Album:    "Clarity",
		Genres:   []string{"electronic", "progressive house"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b27331c35347e0ec535429c0addc",
		Features: domain.AudioFeatures{Valence: 0.394, Energy: 0.793, Danceability: 0.473, Acousticness: 0.000234, Instrumentalness: 0.000001, Speechiness: 0.06, Tempo: 128.026},
	},
	{
		ID:       "1vYXt7VSjH9JIM5oewBZNF",
		Title:    "Midnight City",
		Artist:   "M83",
		Album:    "Hurry Up, We're Dreaming",
		Genres:   []string{"electronic", "synthwave"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b273bb0e9b14abea7d52e3f7ad58",
		Features: domain.AudioFeatures{Valence: 0.749, Energy: 0.789, Danceability: 0.511, Acousticness: 0.000069, Instrumentalness: 0.893, Speechiness: 0.04, Tempo: 104.896},
	},
	{
		ID:       "2Z8WuEywRWYTKe1NybPQEW",
		Title:    "Somebody That I Used to Know",
		Artist:   "Gotye",
		Album:    "Making Mirrors",
		Genres:   []string{"indie", "alternative"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b273f9c35bd8b2fbb68b90b7bbc6",
		Features: domain.AudioFeatures{Valence: 0.425, Energy: 0.449, Danceability: 0.684, Acousticness: 0.102, Instrumentalness: 0.000063, Speechiness: 0.04, Tempo: 129.874},
	},
	{
		ID:       "0VE4kBnHJEhHWW8nnB2OAJ",
		Title:    "Young Folks",
		Artist:   "Peter Bjorn and John",
		Album:    "Writer's Block",
		Genres:   []string{"indie", "indie pop"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b273abc34a5e2c52ec8f3b5ddd35",
		Features: domain.AudioFeatures{Valence: 0.819, Energy: 0.712, Danceability: 0.728, Acousticness: 0.186, Instrumentalness: 0.105, Speechiness: 0.05, Tempo: 120.047},
	},
	{
		ID:       "7dt6x5M1jzdTEt8oCbisTK",
		Title:    "Redbone",
		Artist:   "Childish Gambino",
		Album:    "Awaken, My Love!",
		Genres:   []string{"r&b", "funk"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b2733b5e11ca1b063583df9492db",
		Features: domain.AudioFeatures{Valence: 0.467, Energy: 0.345, Danceability: 0.738, Acousticness: 0.423, Instrumentalness: 0.000017, Speechiness: 0.06, Tempo: 158.784},
	},
	{
		ID:       "4rXVn5n57hCcKXJ5ZQeaB9",
		Title:    "Blinding Lights",
		Artist:   "The Weeknd",
		Album:    "After Hours",
		Genres:   []string{"r&b", "synthwave"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b2738863bc11d2aa12b54f5aeb36",
		Features: domain.AudioFeatures{Valence: 0.334, Energy: 0.73, Danceability: 0.514, Acousticness: 0.00146, Instrumentalness: 0.000002, Speechiness: 0.06, Tempo: 171.009},
	},
	{
		ID:       "1Je1IMUlBXcx1Fz0WE7oPT",
		Title:    "Cruise",
		Artist:   "Florida Georgia Line",
		Album:    "Here's to the Good Times",
		Genres:   []string{"country", "country pop"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b273f9b8b5f60b6b2bb5f9b8b5f6",
		Features: domain.AudioFeatures{Valence: 0.959, Energy: 0.693, Danceability: 0.648, Acousticness: 0.0851, Instrumentalness: 0, Speechiness: 0.04, Tempo: 120.043},
	},
	{
		ID:       "1zHlj4dQ8ZAtrayhuDDmkY",
		Title:    "Need You Now",
		Artist:   "Lady Antebellum",
		Album:    "Need You Now",
		Genres:   []string{"country", "country pop"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b273f9b8b5f60b6b2bb5f9b8b5f6",
		Features: domain.AudioFeatures{Valence: 0.284, Energy: 0.506, Danceability: 0.567, Acousticness: 0.372, Instrumentalness: 0, Speechiness: 0.03, Tempo: 132.013},
	},
	{
		ID:       "7GhIk7Il098yCjg4BQjzvb",
		Title:    "Radioactive",
		Artist:   "Imagine Dragons",
		Album:    "Night Visions",
		Genres:   []string{"alternative", "rock"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b273b83b446d40addb05b033e3ad",
		Features: domain.AudioFeatures{Valence: 0.334, Energy: 0.867, Danceability: 0.593, Acousticness: 0.000081, Instrumentalness: 0.000002, Speechiness: 0.06, Tempo: 136.04},
	},
	{
		ID:       "1mea3bSkSGXuIRvnydlB5b",
		Title:    "Pumped Up Kicks",
		Artist:   "Foster the People",
		Album:    "Torches",
		Genres:   []string{"alternative", "indie pop"},
		CoverURL: "https://i.scdn.co/image/ab67616d0000b273f9b8b5f60b6b2bb5f9b8b5f6",
		Features: domain.AudioFeatures{Valence: 0.686, Energy: 0.622, Danceability: 0.703, Acousticness: 0.011, Instrumentalness: 0.000105, Speechiness: 0.04, Tempo: 127.851},
	},
}
