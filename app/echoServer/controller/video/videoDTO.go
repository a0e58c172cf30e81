package video

type VideoReq struct {
	Title         string   `json:"title" validate:"required"`
	YearOfRelease int      `json:"year_of_release" validate:"required,gt=0"`
	Genres        []string `json:"genres" validate:"required,dive,required"`
}
