package catalog

const imageBaseURL = "https://cdn.appetite.club/storefront"

// ToppingImages maps topping ids to their display image URIs.
var ToppingImages = map[string]string{
	"pepperoni":       imageBaseURL + "/toppings/pepperoni.webp",
	"italian-sausage": imageBaseURL + "/toppings/italian-sausage.webp",
	"bacon":           imageBaseURL + "/toppings/bacon.webp",
	"ham":             imageBaseURL + "/toppings/ham.webp",
	"grilled-chicken": imageBaseURL + "/toppings/grilled-chicken.webp",
	"mushrooms":       imageBaseURL + "/toppings/mushrooms.webp",
	"red-onions":      imageBaseURL + "/toppings/red-onions.webp",
	"green-peppers":   imageBaseURL + "/toppings/green-peppers.webp",
	"black-olives":    imageBaseURL + "/toppings/black-olives.webp",
	"banana-peppers":  imageBaseURL + "/toppings/banana-peppers.webp",
	"jalapenos":       imageBaseURL + "/toppings/jalapenos.webp",
	"tomatoes":        imageBaseURL + "/toppings/tomatoes.webp",
	"spinach":         imageBaseURL + "/toppings/spinach.webp",
	"pineapple":       imageBaseURL + "/toppings/pineapple.webp",
	"extra-cheese":    imageBaseURL + "/toppings/extra-cheese.webp",
}

// SauceImages maps sauce ids to their display image URIs.
var SauceImages = map[string]string{
	"marinara":       imageBaseURL + "/sauces/marinara.webp",
	"alfredo":        imageBaseURL + "/sauces/alfredo.webp",
	"bbq":            imageBaseURL + "/sauces/bbq.webp",
	"buffalo":        imageBaseURL + "/sauces/buffalo.webp",
	"garlic-butter":  imageBaseURL + "/sauces/garlic-butter.webp",
	"spicy-marinara": imageBaseURL + "/sauces/spicy-marinara.webp",
}

// DressingImages maps dressing ids to their display image URIs.
var DressingImages = map[string]string{
	"ranch":          imageBaseURL + "/dressings/ranch.webp",
	"caesar":         imageBaseURL + "/dressings/caesar.webp",
	"italian":        imageBaseURL + "/dressings/italian.webp",
	"honey-mustard":  imageBaseURL + "/dressings/honey-mustard.webp",
	"blue-cheese":    imageBaseURL + "/dressings/blue-cheese.webp",
	"balsamic":       imageBaseURL + "/dressings/balsamic.webp",
	"greek":          imageBaseURL + "/dressings/greek.webp",
	"oil-and-vinegar": imageBaseURL + "/dressings/oil-and-vinegar.webp",
}

// ImageRegistries exposes the image records by category name for read access
// from the storefront API.
var ImageRegistries = map[string]map[string]string{
	"toppings":  ToppingImages,
	"sauces":    SauceImages,
	"dressings": DressingImages,
}

// ImageFor returns the image URI for an option id, searching toppings, then
// sauces, then dressings. "" means no image is registered.
func ImageFor(id string) string {
	if uri, ok := ToppingImages[id]; ok {
		return uri
	}
	if uri, ok := SauceImages[id]; ok {
		return uri
	}
	if uri, ok := DressingImages[id]; ok {
		return uri
	}
	return ""
}
