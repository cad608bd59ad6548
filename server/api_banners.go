package foodcartserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Banner is one promotional slide on the storefront landing page.
type Banner struct {
	Title string `json:"title"`
	Src   string `json:"src"`
	Text  string `json:"text"`
}

// BannersAPI serves the static promotional content.
type BannersAPI struct {
	banners []Banner
}

// NewBannersAPI creates a BannersAPI with the default slide set.
// TODO move banner content to storage once marketing needs to edit it.
func NewBannersAPI() BannersAPI {
	return BannersAPI{
		banners: []Banner{
			{Title: "Burger", Src: "/static/burger.jpg", Text: "Tasty Burger at your door step"},
			{Title: "Spices", Src: "/static/food.jpg", Text: "All Cuisines"},
			{Title: "New York", Src: "/static/tasty.jpg", Text: "Food is incomplete without a tasty dessert"},
		},
	}
}

// Get /api/banners/
// Lists the storefront banners
func (api *BannersAPI) ListBanners(c *gin.Context) {
	c.JSON(http.StatusOK, api.banners)
}
