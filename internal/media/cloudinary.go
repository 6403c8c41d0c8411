package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"artcatalog/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Default is the process-wide Cloudinary client, set up in main. Handlers use
// it the same way they use database.DB.
var Default *Client

var errNotConfigured = errors.New("media client not configured")

// Client wraps the Cloudinary SDK behind the two operations the catalog
// needs: upload into a folder and delete by public id.
type Client struct {
	cld *cloudinary.Cloudinary
}

func NewClient() (*Client, error) {
	cld, err := cloudinary.NewFromParams(
		config.CLOUDINARY_CLOUD_NAME,
		config.CLOUDINARY_API_KEY,
		config.CLOUDINARY_API_SECRET,
	)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &Client{cld: cld}, nil
}

func Init() error {
	c, err := NewClient()
	if err != nil {
		return err
	}
	Default = c
	return nil
}

// Upload stores an image in the given folder and returns its delivery URL and
// public id.
func (c *Client) Upload(ctx context.Context, file io.Reader, folder string) (url string, publicID string, err error) {
	if c == nil || c.cld == nil {
		return "", "", errNotConfigured
	}
	res, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", "", err
	}
	return res.SecureURL, res.PublicID, nil
}

// Delete removes the remote asset. Deleting an unknown public id is not an
// error on the Cloudinary side.
func (c *Client) Delete(ctx context.Context, publicID string) error {
	if c == nil || c.cld == nil {
		return errNotConfigured
	}
	_, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
