package youtube

// largestThumbnail picks the highest resolution thumbnail offered by
// the player response.
func largestThumbnail(player playerResponse) string {
	best := ""
	bestArea := -1
	for _, t := range player.VideoDetails.Thumbnail.Thumbnails {
		if area := t.Width * t.Height; area > bestArea {
			best = t.URL
			bestArea = area
		}
	}
	return best
}
