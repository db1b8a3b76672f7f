package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"wedding/store"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	store store.Store
}

// NewExportHandler 创建导出处理器
func NewExportHandler(s store.Store) *ExportHandler {
	return &ExportHandler{store: s}
}

// ExportGuests 导出宾客名单为 Excel
// @Summary 导出宾客名单
// @Description 导出全部宾客为 Excel 文件
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Excel 文件"
// @Router /api/export/guests [get]
func (h *ExportHandler) ExportGuests(c *gin.Context) {
	guests, err := h.store.ListGuests()
	if err != nil {
		log.Printf("查询宾客失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "宾客名单"
	f.SetSheetName("Sheet1", sheetName)

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 20)
	f.SetColWidth(sheetName, "C", "C", 15)
	f.SetColWidth(sheetName, "D", "D", 15)
	f.SetColWidth(sheetName, "E", "E", 10)
	f.SetColWidth(sheetName, "F", "F", 18)
	f.SetColWidth(sheetName, "G", "G", 25)
	f.SetColWidth(sheetName, "H", "H", 30)

	// 写入表头
	headers := []string{"ID", "姓名", "分类", "回复状态", "携伴", "电话", "邮箱", "备注"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 写入数据
	confirmed := 0
	for i, guest := range guests {
		row := i + 2
		plusOne := "否"
		if guest.PlusOne {
			plusOne = "是"
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), guest.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), guest.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), guest.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), rsvpLabel(guest.RSVPStatus))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), plusOne)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), deref(guest.Phone))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), deref(guest.Email))
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), deref(guest.Notes))

		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), dataStyle)
		if guest.RSVPStatus == "confirmed" {
			confirmed++
		}
	}

	// 添加汇总行
	summaryRow := len(guests) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合计")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("共 %d 位宾客", len(guests)))
	f.MergeCell(sheetName, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("E%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", summaryRow), fmt.Sprintf("已确认 %d 位", confirmed))
	f.MergeCell(sheetName, fmt.Sprintf("F%d", summaryRow), fmt.Sprintf("H%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("H%d", summaryRow), summaryStyle)

	// 设置响应头
	filename := fmt.Sprintf("宾客名单_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))

	// 写入响应
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成 Excel 失败"})
		return
	}
}

// ExportBudget 导出预算明细为 CSV
// @Summary 导出预算明细
// @Description 导出全部预算项目为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Success 200 {file} file "CSV 文件"
// @Router /api/export/budget [get]
func (h *ExportHandler) ExportBudget(c *gin.Context) {
	items, err := h.store.ListBudgetItems()
	if err != nil {
		log.Printf("查询预算项目失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 生成 CSV
	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	// 写入表头
	headers := []string{"ID", "类别", "描述", "预估金额", "实际金额", "已支付", "供应商ID", "创建时间"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 写入数据
	for _, item := range items {
		actual := ""
		if item.ActualAmount != nil {
			actual = fmt.Sprintf("%.2f", *item.ActualAmount)
		}
		vendorID := ""
		if item.VendorID != nil {
			vendorID = fmt.Sprintf("%d", *item.VendorID)
		}
		paid := "否"
		if item.Paid {
			paid = "是"
		}
		row := []string{
			fmt.Sprintf("%d", item.ID),
			item.Category,
			item.Description,
			fmt.Sprintf("%.2f", item.EstimatedAmount),
			actual,
			paid,
			vendorID,
			item.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 设置响应头
	filename := fmt.Sprintf("budget_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func rsvpLabel(status string) string {
	switch status {
	case "confirmed":
		return "已确认"
	case "declined":
		return "已谢绝"
	default:
		return "待回复"
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
