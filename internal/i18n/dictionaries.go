package i18n

var dictionaries = map[string]map[string]string{
	"en": {
		"header.title": "Farm Store Dashboard",

		"product_management.title":                    "Products & Stock Management",
		"product_table.headers.name":                  "Product Name",
		"product_table.headers.price":                 "Price (HT)",
		"product_table.headers.stock":                 "Stock",
		"product_table.headers.actions":               "Actions",
		"product_management.add_section.summary":      "Click to add a new product",
		"product_management.form.name_placeholder":    "Product Name",
		"product_management.form.price_placeholder":   "Price (HT)",
		"product_management.form.stock_placeholder":   "Initial Stock",
		"product_management.form.submit_button":       "Confirm Add",

		"customer_management.title":                      "Loyal Customer Management",
		"customer_management.edit_title":                 "Edit Customer",
		"customer_management.form.firstname_placeholder": "First Name",
		"customer_management.form.lastname_placeholder":  "Last Name",
		"customer_management.gender.male":                "Male",
		"customer_management.gender.female":              "Female",
		"customer_management.form.submit_button":         "Add Customer",
		"customer_management.form.save_button":           "Save Changes",
		"tooltip.edit_customer":                          "Edit",
		"alert.customer_update_success":                  "Customer updated successfully!",
		"alert.customer_update_fail":                     "Failed to update customer: ",

		"sales_entry.title":                    "Record a Sale",
		"sales_entry.form.product_label":       "Product:",
		"sales_entry.form.quantity_label":      "Quantity:",
		"sales_entry.form.add_to_cart_button":  "Add to List",
		"sales_entry.cart_title":               "Current Sale List",
		"sales_entry.form.customer_label":      "Customer (Optional):",
		"sales_entry.form.walk_in_customer":    "— Walk-in Customer —",
		"sales_entry.total_price":              "Total: €0.00",
		"sales_entry.form.confirm_sale_button": "Confirm Sale",

		"sales_report.title":                 "Sales Snapshot",
		"sales_report.form.start_date_label": "Start Date:",
		"sales_report.form.end_date_label":   "End Date:",
		"sales_report.form.generate_button":  "Query",

		"alert.product_load_fail":    "Could not load product data. Please check if the backend is running.",
		"alert.product_add_success":  "Product added successfully!",
		"alert.product_add_fail":     "Failed to add product: ",
		"alert.stock_update_fail":    "Failed to update stock: ",
		"alert.customer_load_fail":   "Could not load customer data.",
		"alert.customer_add_success": "Customer added successfully!",
		"alert.customer_add_fail":    "Failed to add customer: ",
		"alert.invalid_quantity":     "Please select a product and enter a valid quantity.",
		"alert.cart_empty":           "Sale list cannot be empty!",
		"alert.sale_success":         "Sale recorded successfully!",
		"alert.sale_fail":            "Failed to record sale: ",
		"alert.select_dates":         "Please select a start and end date.",
		"alert.report_fail":          "Failed to generate report.",
		"alert.no_products":          "No products available for sale.",
		"alert.server_error":         "Server error. Please try again.",

		"empty.product_table": "No products available",
		"empty.customer_list": "No customers found",
		"empty.cart":          "Cart is empty",

		"tooltip.increase_stock": "Increase stock",
		"tooltip.decrease_stock": "Decrease stock",
		"tooltip.remove_item":    "Remove",

		"report.period":        "From {start} to {end}",
		"report.total_revenue": "Total Revenue: €{amount}",
		"report.sale_item":     "{date} - {product} x {quantity} (sold to: {customer})",
		"report.no_sales":      "No sales in this period.",

		"sales_history.title": "Recent Sales",
		"sales_history.empty": "No sales recorded yet.",
		"sales_history.item":  "{date} | {product} x {quantity} | €{price} | {customer}",
	},
	"zh": {
		"header.title": "农场商店管理系统",

		"product_management.title":                    "产品与库存管理",
		"product_table.headers.name":                  "产品名称",
		"product_table.headers.price":                 "单价 (HT)",
		"product_table.headers.stock":                 "库存",
		"product_table.headers.actions":               "操作",
		"product_management.add_section.summary":      "点击添加新产品",
		"product_management.form.name_placeholder":    "产品名称",
		"product_management.form.price_placeholder":   "单价(HT)",
		"product_management.form.stock_placeholder":   "初始库存",
		"product_management.form.submit_button":       "确认添加",

		"customer_management.title":                      "忠实客户管理",
		"customer_management.edit_title":                 "编辑客户",
		"customer_management.form.firstname_placeholder": "名",
		"customer_management.form.lastname_placeholder":  "姓",
		"customer_management.gender.male":                "男",
		"customer_management.gender.female":              "女",
		"customer_management.form.submit_button":         "添加客户",
		"customer_management.form.save_button":           "保存修改",
		"tooltip.edit_customer":                          "编辑",
		"alert.customer_update_success":                  "客户信息更新成功!",
		"alert.customer_update_fail":                     "更新客户失败: ",

		"sales_entry.title":                    "销售录入",
		"sales_entry.form.product_label":       "产品:",
		"sales_entry.form.quantity_label":      "数量:",
		"sales_entry.form.add_to_cart_button":  "添加到清单",
		"sales_entry.cart_title":               "本次销售清单",
		"sales_entry.form.customer_label":      "客户 (可选):",
		"sales_entry.form.walk_in_customer":    "— 散客 —",
		"sales_entry.total_price":              "总计: €0.00",
		"sales_entry.form.confirm_sale_button": "确认销售",

		"sales_report.title":                 "销售业绩速览",
		"sales_report.form.start_date_label": "开始日期:",
		"sales_report.form.end_date_label":   "结束日期:",
		"sales_report.form.generate_button":  "查询",

		"alert.product_load_fail":    "无法加载产品数据，请检查后端服务是否运行。",
		"alert.product_add_success":  "产品添加成功!",
		"alert.product_add_fail":     "添加产品失败: ",
		"alert.stock_update_fail":    "库存更新失败: ",
		"alert.customer_load_fail":   "无法加载客户数据。",
		"alert.customer_add_success": "客户添加成功!",
		"alert.customer_add_fail":    "添加客户失败: ",
		"alert.invalid_quantity":     "请选择一个产品并输入有效的数量。",
		"alert.cart_empty":           "销售清单不能为空!",
		"alert.sale_success":         "销售成功记录!",
		"alert.sale_fail":            "销售失败: ",
		"alert.select_dates":         "请选择开始和结束日期。",
		"alert.report_fail":          "生成报告失败。",
		"alert.no_products":          "没有可销售的产品。",
		"alert.server_error":         "服务器错误，请重试。",

		"empty.product_table": "暂无产品数据",
		"empty.customer_list": "暂无客户数据",
		"empty.cart":          "清单为空",

		"tooltip.increase_stock": "增加库存",
		"tooltip.decrease_stock": "减少库存",
		"tooltip.remove_item":    "移除",

		"report.period":        "从 {start} 到 {end}",
		"report.total_revenue": "总销售额: €{amount}",
		"report.sale_item":     "{date} - {product} x {quantity} (售给: {customer})",
		"report.no_sales":      "该时间段内无销售记录。",

		"sales_history.title": "最近销售记录",
		"sales_history.empty": "暂无销售记录。",
		"sales_history.item":  "{date} | {product} x {quantity} | €{price} | {customer}",
	},
}
