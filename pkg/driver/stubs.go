package driver

import (
	"github.com/user/vidbridge/pkg/imageformat"
	"github.com/user/vidbridge/pkg/ports"
)

// SubpictureID references a subpicture. Subpictures are not implemented.
type SubpictureID uint32

// DeriveImage would expose a surface's pixels as an image without a
// copy.
func (d *Driver) DeriveImage(surface SurfaceID) (*ImageInfo, error) {
	return nil, ErrNotImplemented
}

// SetImagePalette would load a palette into an indexed image. No
// paletted formats are supported.
func (d *Driver) SetImagePalette(image ImageID, palette []byte) error {
	return ErrNotImplemented
}

// PutImage would copy image pixels into a surface.
func (d *Driver) PutImage(surface SurfaceID, image ImageID, srcX, srcY int32, width, height uint32, destX, destY int32) error {
	return ErrNotImplemented
}

// PutImageFull is the extended-rectangle variant of PutImage.
func (d *Driver) PutImageFull(surface SurfaceID, image ImageID, src ports.Rect, dest ports.Rect) error {
	return ErrNotImplemented
}

// QuerySubpictureFormats would enumerate the formats usable for
// subpictures.
func (d *Driver) QuerySubpictureFormats(dst []imageformat.Format, flags []uint32) (int, error) {
	return 0, ErrNotImplemented
}

// CreateSubpicture would wrap an image in a subpicture.
func (d *Driver) CreateSubpicture(image ImageID) (SubpictureID, error) {
	return 0, ErrNotImplemented
}

// DestroySubpicture would destroy a subpicture.
func (d *Driver) DestroySubpicture(subpicture SubpictureID) error {
	return ErrNotImplemented
}

// SetSubpictureImage would swap the image behind a subpicture.
func (d *Driver) SetSubpictureImage(subpicture SubpictureID, image ImageID) error {
	return ErrNotImplemented
}

// SetSubpictureChromakey would set the chroma key range of a
// subpicture.
func (d *Driver) SetSubpictureChromakey(subpicture SubpictureID, chromakeyMin, chromakeyMax, chromakeyMask uint32) error {
	return ErrNotImplemented
}

// SetSubpictureGlobalAlpha would set the global alpha of a subpicture.
func (d *Driver) SetSubpictureGlobalAlpha(subpicture SubpictureID, globalAlpha float32) error {
	return ErrNotImplemented
}

// AssociateSubpicture would attach a subpicture to target surfaces.
func (d *Driver) AssociateSubpicture(subpicture SubpictureID, targets []SurfaceID, srcX, srcY, destX, destY int16, width, height uint16, flags uint32) error {
	return ErrNotImplemented
}

// AssociateSubpictureFull is the extended-rectangle variant of
// AssociateSubpicture.
func (d *Driver) AssociateSubpictureFull(subpicture SubpictureID, targets []SurfaceID, src ports.Rect, dest ports.Rect, flags uint32) error {
	return ErrNotImplemented
}

// DeassociateSubpicture would detach a subpicture from target surfaces.
func (d *Driver) DeassociateSubpicture(subpicture SubpictureID, targets []SurfaceID) error {
	return ErrNotImplemented
}
