package store

import "sort"

const favoritesFile = "favorites.json"

type favoriteMovies struct {
	MovieIds []int `json:"movie_ids"`
}

// LoadFavorites returns the favorited movie ids as a set.
func LoadFavorites() (map[int]bool, error) {
	var favorites favoriteMovies
	if _, err := readFile(favoritesFile, &favorites); err != nil {
		return nil, err
	}
	set := make(map[int]bool, len(favorites.MovieIds))
	for _, id := range favorites.MovieIds {
		if id > 0 {
			set[id] = true
		}
	}
	return set, nil
}

// ToggleFavorite flips a movie's favorite status and reports the new state.
func ToggleFavorite(movieID int) (bool, error) {
	set, err := LoadFavorites()
	if err != nil {
		return false, err
	}
	now := !set[movieID]
	if now {
		set[movieID] = true
	} else {
		delete(set, movieID)
	}

	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	if err := writeFile(favoritesFile, favoriteMovies{MovieIds: ids}); err != nil {
		return false, err
	}
	return now, nil
}
