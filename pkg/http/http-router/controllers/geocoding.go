package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"github.com/geoglue/mapsearch/pkg/geocoder"
	helper "github.com/geoglue/mapsearch/pkg/http/http-router/router-helper"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"
)

var (
	regexSearch = regexp.MustCompile("^[A-Za-z0-9_ +,.()-]+$")
)

type geocodeAPI struct {
	geocodingService GeocodingService
	log              *zap.Logger
}

func New(geocodingService GeocodingService, log *zap.Logger) *geocodeAPI {
	return &geocodeAPI{
		geocodingService: geocodingService,
		log:              log,
	}
}

func (api *geocodeAPI) Routes(group *helper.RouteGroup) {
	group.GET("/suggest", api.suggest)
	group.GET("/reverse", api.reverse)
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// suggestRequest model info
//
//	@Description	request body for place autocomplete.
type suggestRequest struct {
	Query string `json:"query" validate:"required,min=3"` // free-text place query entered by the user.
}

// suggestResponse model info
//
//	@Description	response body with candidate places for the query prefix.
type suggestResponse struct {
	Data []geocoder.Feature `json:"data"` // candidate places, best match first.
}

// suggest godoc
// @Summary		suggest operation returns candidate places matching the query prefix, for the search box dropdown.
// @Description	suggest operation returns candidate places matching the query prefix, for the search box dropdown.
// @Tags			geocoding
// @ID suggest
// @Param			body	body	suggestRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/suggest [get]
// @Success		200	{object}	suggestResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *geocodeAPI) suggest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request suggestRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	validate := validator.New()
	notMatch := regexSearch.MatchString(request.Query)

	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	} else if !notMatch {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: "+"query must be alphanumeric or contain special characters: +, ., (, ), ,, -"))
		return
	}

	results, err := api.geocodingService.Suggest(r.Context(), request.Query)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": results}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type reverseRequest struct {
	Lat float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon float64 `json:"lon" validate:"required,min=-180,max=180"`
}

// reverseResponse model info
//
//	@Description	response body with the places containing the coordinate.
type reverseResponse struct {
	Data []geocoder.Feature `json:"data"`
}

// reverse godoc
// @Summary		reverse operation returns the places containing the given coordinate.
// @Description	reverse operation returns the places containing the given coordinate.
// @Tags			geocoding
// @ID reverse
// @Param			body	body	reverseRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/reverse [get]
// @Success		200	{object}	reverseResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *geocodeAPI) reverse(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request reverseRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	result, err := api.geocodingService.Reverse(r.Context(), request.Lon, request.Lat)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
