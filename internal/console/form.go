package console

import (
	"errors"
	"mime/multipart"
	"net/http"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/book"
	"rebookz-admin/internal/utils"
)

const maxUploadSize = 10 << 20

var errInvalidForm = apiclient.Validation(map[string]string{"form": "Invalid form submission"})

// parseUpload parses a multipart (or plain) form and returns the picked
// image, or nil when none was chosen. The returned close func is never nil.
func parseUpload(r *http.Request, field string) (*apiclient.File, func(), error) {
	noop := func() {}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		if !errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, errInvalidForm
		}
		if err := r.ParseForm(); err != nil {
			return nil, noop, errInvalidForm
		}
		return nil, noop, nil
	}

	f, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, errInvalidForm
	}
	return uploadFile(f, header), func() { f.Close() }, nil
}

func uploadFile(f multipart.File, header *multipart.FileHeader) *apiclient.File {
	return &apiclient.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        f,
	}
}

// bookForm reads the listing fields shared by the add-book and
// fulfill-request forms onto b. Blank fields keep b's values.
func bookForm(r *http.Request, b *book.NewBook) error {
	form := r.Form

	if v := utils.FormString(form, "title"); v != nil {
		b.Title = *v
	}
	if v := utils.FormString(form, "description"); v != nil {
		b.Description = *v
	}
	if v := utils.FormString(form, "category"); v != nil {
		b.Category = *v
	}
	if v := utils.FormString(form, "subcategory"); v != nil {
		b.Subcategory = *v
	}
	if v := utils.FormString(form, "condition"); v != nil {
		b.Condition = *v
	}
	if v := utils.FormString(form, "type"); v != nil {
		b.Type = *v
	}
	if v := utils.FormString(form, "school"); v != nil {
		b.School = *v
	}
	if v := utils.FormString(form, "classLevel"); v != nil {
		b.ClassLevel = *v
	}
	if v := utils.FormString(form, "sellerPhone"); v != nil {
		b.SellerPhone = *v
	}
	if v := utils.FormString(form, "address"); v != nil {
		b.Location.Address = *v
	}

	var err error
	if b.CategoryID, err = utils.FormInt(form, "categoryId", b.CategoryID); err != nil {
		return apiclient.Validation(map[string]string{"categoryId": "Category id must be a number"})
	}
	if b.SubcategoryID, err = utils.FormInt(form, "subcategoryId", b.SubcategoryID); err != nil {
		return apiclient.Validation(map[string]string{"subcategoryId": "Subcategory id must be a number"})
	}

	price, err := utils.FormFloat(form, "price")
	if err != nil {
		return apiclient.Validation(map[string]string{"price": "Price must be a number"})
	}
	if price != nil {
		b.Price = *price
	}
	return nil
}
