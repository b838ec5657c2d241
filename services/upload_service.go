package services

import (
	"context"
	"mime/multipart"

	"hotel-booking/errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadRoomImages upload lần lượt các ảnh phòng lên Cloudinary và trả về danh sách URL.
// Một ảnh upload lỗi thì toàn bộ request tạo phòng thất bại.
func UploadRoomImages(ctx context.Context, cld *cloudinary.Cloudinary, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))

	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeUploadFailed, "Lỗi khi mở file "+file.Filename, err)
		}

		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
		src.Close()
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeUploadFailed, "Upload ảnh "+file.Filename+" thất bại", err)
		}

		urls = append(urls, resp.SecureURL)
	}

	return urls, nil
}
