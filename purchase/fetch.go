package purchase

import (
	"context"
	"sync"

	"cinepass-cli/model"
	"cinepass-cli/service"
)

// ShowtimeData is the joined result of the two fetches a showtime selection
// needs before seat picking can start.
type ShowtimeData struct {
	Details model.ShowtimeDetails
	Room    model.RoomWithSeats
}

// FetchShowtimeData loads the showtime detail and the room layout in
// parallel and joins them all-or-nothing: if either request fails, no
// partial result is returned.
func FetchShowtimeData(ctx context.Context, client *service.Client, showtimeID, roomID int) (ShowtimeData, error) {
	var (
		wg         sync.WaitGroup
		details    model.ShowtimeDetails
		room       model.RoomWithSeats
		detailsErr error
		roomErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		details, detailsErr = client.GetShowtime(ctx, showtimeID)
	}()
	go func() {
		defer wg.Done()
		room, roomErr = client.GetRoomWithSeats(ctx, roomID)
	}()
	wg.Wait()

	if detailsErr != nil {
		return ShowtimeData{}, detailsErr
	}
	if roomErr != nil {
		return ShowtimeData{}, roomErr
	}
	return ShowtimeData{Details: details, Room: room}, nil
}
