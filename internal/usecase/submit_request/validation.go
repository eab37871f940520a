package submit_request

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-CitizenClient/internal/domain"
	"github.com/m04kA/SMC-CitizenClient/internal/integrations/citizenapi"
)

const otherWasteType = "Other"

// preferredDateTimeLayouts форматы, в которых принимается preferred_datetime
var preferredDateTimeLayouts = []string{
	domain.DateTimeFormat,
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

type fields map[string]string

func (f fields) get(key string) string {
	return strings.TrimSpace(f[key])
}

func validateImages(errs *domain.ValidationErrors, images []citizenapi.Image, min int) {
	switch {
	case len(images) < min:
		errs.Add("images", "Please upload at least one photo")
	case len(images) > domain.MaxImagesPerRequest:
		errs.Add("images", "You can upload up to 5 photos")
	}
}

func validateContact(errs *domain.ValidationErrors, contact, requiredMsg, formatMsg string) {
	switch {
	case contact == "":
		errs.Add("contact_number", requiredMsg)
	case !domain.IsContactNumber(contact):
		errs.Add("contact_number", formatMsg)
	}
}

// buildPublicWasteForm вывоз мусора из общественного места
func buildPublicWasteForm(f fields, images []citizenapi.Image) (*citizenapi.Form, domain.ValidationErrors) {
	var errs domain.ValidationErrors
	wasteType := f.get("waste_type")
	if wasteType == "" {
		errs.Add("waste_type", "Type of waste is required")
	}
	if wasteType == otherWasteType && f.get("waste_type_other") == "" {
		errs.Add("waste_type_other", "Please specify the waste type")
	}
	if f.get("description") == "" {
		errs.Add("description", "Description is required")
	}
	if f.get("location") == "" {
		errs.Add("location", "Location is required")
	}
	if f.get("address") == "" {
		errs.Add("address", "Address is required")
	}
	validateContact(&errs, f.get("contact_number"), "Contact number is required", "Enter a valid 10-digit phone number")
	validateImages(&errs, images, 1)
	if len(errs) > 0 {
		return nil, errs
	}

	form := &citizenapi.Form{Images: images}
	form.Set("type", domain.WasteTypePublic)
	form.Set("waste_type", wasteType)
	if wasteType == otherWasteType {
		form.Set("waste_type_other", f.get("waste_type_other"))
	}
	form.Set("description", f.get("description"))
	form.Set("location", f.get("location"))
	form.Set("contact_number", f.get("contact_number"))
	form.Set("payment_method", domain.PaymentMethodNone)
	return form, nil
}

// buildPrivateWasteForm вывоз мусора от дома, с выбором даты и слота
func buildPrivateWasteForm(f fields, images []citizenapi.Image, now time.Time) (*citizenapi.Form, domain.ValidationErrors) {
	var errs domain.ValidationErrors
	wasteType := f.get("waste_type")
	if wasteType == "" {
		errs.Add("waste_type", "Type of waste is required")
	}
	if wasteType == otherWasteType && f.get("waste_type_other") == "" {
		errs.Add("waste_type_other", "Please specify the waste type")
	}
	if f.get("description") == "" {
		errs.Add("description", "Description is required")
	}
	if f.get("location") == "" {
		errs.Add("location", "Location is required")
	}
	if f.get("house_number") == "" {
		errs.Add("house_number", "House number is required")
	}
	validateContact(&errs, f.get("contact_number"), "Contact number is required", "Enter a valid 10-digit phone number")
	if f.get("time_slot") == "" {
		errs.Add("time_slot", "Please select a time slot")
	}
	date := f.get("date")
	if date == "" {
		date = now.Format(domain.DateFormat)
	} else if !domain.IsDate(date) {
		errs.Add("date", "Date must be in the format YYYY-MM-DD")
	}
	validateImages(&errs, images, 1)
	if len(errs) > 0 {
		return nil, errs
	}

	form := &citizenapi.Form{Images: images}
	form.Set("type", domain.WasteTypePrivate)
	form.Set("waste_type", wasteType)
	if wasteType == otherWasteType {
		form.Set("waste_type_other", f.get("waste_type_other"))
	}
	form.Set("description", f.get("description"))
	form.Set("location", f.get("location"))
	form.Set("house_number", f.get("house_number"))
	form.Set("floor", f.get("floor"))
	form.Set("tower_block", f.get("tower_block"))
	form.Set("landmark", f.get("landmark"))
	form.Set("contact_number", f.get("contact_number"))
	form.Set("time_slot", f.get("time_slot"))
	form.Set("date", date)
	return form, nil
}

// buildComplaintForm жалоба. Категория "Other" всегда отправляется с подкатегорией 49.
func buildComplaintForm(f fields, images []citizenapi.Image, categories []*domain.Category) (*citizenapi.Form, domain.ValidationErrors) {
	var errs domain.ValidationErrors
	category := findCategory(categories, f.get("category"))
	if category == nil {
		errs.Add("category", "Please select a complaint category")
	}

	otherCategory := category != nil && category.IsOther()
	subcategory := f.get("subcategory")
	otherSubcategory := strings.EqualFold(subcategory, "other")
	if !otherCategory {
		if subcategory == "" {
			errs.Add("subcategory", "Please select a subcategory")
		}
		if otherSubcategory && f.get("subcategory_other") == "" {
			errs.Add("subcategory_other", "Please specify the subcategory")
		}
	}
	if f.get("address") == "" {
		errs.Add("address", "Please enter the address")
	}
	if f.get("description") == "" {
		errs.Add("description", "Please enter the complaint description")
	}
	validateImages(&errs, images, 1)
	if len(errs) > 0 {
		return nil, errs
	}

	form := &citizenapi.Form{Images: images}
	form.Set("category", category.ID)
	switch {
	case otherCategory:
		form.Set("subcategory", domain.OtherComplaintSubcategoryID)
		form.Set("subcategory_other", f.get("subcategory_other"))
	case otherSubcategory:
		form.Set("subcategory", "")
		form.Set("subcategory_other", f.get("subcategory_other"))
	default:
		form.Set("subcategory", subcategory)
	}
	form.Set("location", f.get("location"))
	form.Set("address", f.get("address"))
	form.Set("description", f.get("description"))
	return form, nil
}

// buildPollutionForm жалоба на загрязнение: type это категория, cause это её подкатегория
func buildPollutionForm(f fields, images []citizenapi.Image, categories []*domain.Category) (*citizenapi.Form, domain.ValidationErrors) {
	var errs domain.ValidationErrors
	pollutionType := f.get("type")
	cause := f.get("cause")
	if pollutionType == "" {
		errs.Add("type", "Pollution type is required")
	}
	if cause == "" {
		errs.Add("cause", "Pollution cause is required")
	}

	otherCause := false
	if category := findCategory(categories, pollutionType); category != nil {
		for i := range category.Subcategories {
			if category.Subcategories[i].ID == cause && category.Subcategories[i].IsOther() {
				otherCause = true
			}
		}
	}
	if otherCause && f.get("other_cause") == "" {
		errs.Add("other_cause", "Please specify the other cause")
	}
	if f.get("address") == "" {
		errs.Add("address", "Address is required")
	}
	if f.get("description") == "" {
		errs.Add("description", "Description is required")
	}
	validateImages(&errs, images, 1)
	if len(errs) > 0 {
		return nil, errs
	}

	form := &citizenapi.Form{Images: images}
	form.Set("type", pollutionType)
	form.Set("cause", cause)
	if otherCause {
		form.Set("other_cause", f.get("other_cause"))
	}
	form.Set("address", f.get("address"))
	form.Set("description", f.get("description"))
	form.Set("location", f.get("location"))
	return form, nil
}

// buildCesspoolForm заявка на очистку септика
func buildCesspoolForm(f fields, images []citizenapi.Image) (*citizenapi.Form, domain.ValidationErrors) {
	var errs domain.ValidationErrors
	if f.get("name") == "" {
		errs.Add("name", "Please enter your name")
	}
	validateContact(&errs, f.get("contact_number"), "Please enter contact number", "Contact number must be 10 digits")
	if f.get("location") == "" {
		errs.Add("location", "Location is required")
	}
	if f.get("address") == "" {
		errs.Add("address", "Please enter address")
	}
	if f.get("description") == "" {
		errs.Add("description", "Please enter description")
	}
	if f.get("waste_tank_type") == "" {
		errs.Add("waste_tank_type", "Please enter waste tank type")
	}
	capacity := f.get("capacity")
	if capacity == "" {
		errs.Add("capacity", "Please enter capacity")
	} else if v, err := strconv.ParseFloat(capacity, 64); err != nil || v <= 0 {
		errs.Add("capacity", "Capacity must be a positive number")
	}
	urgency := f.get("urgency_level")
	if urgency == "" {
		errs.Add("urgency_level", "Please select urgency level")
	} else if !isUrgencyLevel(urgency) {
		errs.Add("urgency_level", "Urgency level must be High, Medium or Low")
	}
	preferred := f.get("preferred_datetime")
	if preferred == "" {
		errs.Add("preferred_datetime", "Please select preferred date and time")
	} else if formatted, ok := normalizeDateTime(preferred); ok {
		preferred = formatted
	} else {
		errs.Add("preferred_datetime", "Please enter date and time in the format YYYY-MM-DDTHH:mm:ss (e.g. 2025-05-22T14:30:00).")
	}
	if len(images) == 0 {
		errs.Add("cesspool_images", "Please upload at least one photo")
	} else {
		validateImages(&errs, images, 1)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	form := &citizenapi.Form{Images: images}
	form.Set("name", f.get("name"))
	form.Set("contact_number", f.get("contact_number"))
	form.Set("location", f.get("location"))
	form.Set("address", f.get("address"))
	form.Set("description", f.get("description"))
	form.Set("waste_tank_type", f.get("waste_tank_type"))
	form.Set("capacity", capacity)
	form.Set("urgency_level", urgency)
	form.Set("preferred_datetime", preferred)
	form.Set("accessibility_note", f.get("accessibility_note"))
	return form, nil
}

func findCategory(categories []*domain.Category, id string) *domain.Category {
	if id == "" {
		return nil
	}
	for _, c := range categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func isUrgencyLevel(value string) bool {
	for _, level := range domain.UrgencyLevels {
		if value == level {
			return true
		}
	}
	return false
}

// normalizeDateTime приводит дату и время к YYYY-MM-DDTHH:MM:SS
func normalizeDateTime(value string) (string, bool) {
	for _, layout := range preferredDateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(domain.DateTimeFormat), true
		}
	}
	return "", false
}
