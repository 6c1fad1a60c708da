package admin

import (
	"net/http"

	adminapp "github.com/sngm3741/liff-survey/api/internal/admin/application"
	"github.com/sngm3741/liff-survey/api/internal/interfaces/http/common"
)

// parsePaging は limit / offset を読み取る。解釈できない値は既定値に戻す。
func parsePaging(r *http.Request) adminapp.Paging {
	query := r.URL.Query()
	limit, _ := common.ParseNonNegativeInt(query.Get("limit"), adminapp.DefaultLimit)
	offset, _ := common.ParseNonNegativeInt(query.Get("offset"), 0)
	return adminapp.NewPaging(limit, offset)
}
