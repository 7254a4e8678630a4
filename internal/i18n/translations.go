package i18n

var translations = map[Language]map[string]string{
	English: {
		"app_title":              "Sui Pocket",
		"login_title":            "Sui Pocket - Login",
		"first_run_message":      "First run: Please set a password (for local encryption)",
		"enter_password":         "Enter password",
		"confirm_password":       "Confirm password",
		"create_password_button": "Create Password and Enter",
		"login_message":          "Please enter your password to log in",
		"login_button":           "Login",
		"exit_button":            "Exit",
		"password_info":          "The password will be hashed with the Argon2 algorithm and saved in the local configuration directory.",
		"network_label":          "Network",
		"import_wallet_title":    "Import Wallet",
		"import_wallet_button":   "Import Wallet",
		"wallet_loaded":          "Wallet Loaded",
		"address_label":          "Address:",
		"balance_label":          "Balance:",
		"refresh_balance_button": "Refresh Balance",
		"logout_button":          "Logout",
		"copy_address_button":    "Copy Address",
		"view_explorer":          "View in Explorer",

		"password_empty_error":     "Password cannot be empty",
		"password_mismatch_error":  "The two passwords entered do not match",
		"password_not_found_error": "No saved password found",
		"password_incorrect_error": "Incorrect password",
		"parse_hash_error":         "Failed to parse stored password record",
		"write_error":              "Write failed",

		"import_private_key_message": "Please import a private key to begin.",
		"private_key_hint":           "Enter your private key here...",
		"format_status":              "Format:",
		"valid_format":               "Valid format",
		"invalid_format":             "Invalid format",
		"wallet_imported_success":    "Wallet imported successfully for address",
		"import_private_key_failed":  "Failed to import private key. Please check the format (Bech32, Base64 or Hex).",
		"wallet_loaded_from_storage": "Wallet restored from encrypted storage",
		"wallet_logged_out_message":  "Wallet logged out. Import a key to begin.",
		"stored_key_load_warning":    "Stored key could not be loaded; import it again to re-save.",
		"secret_decrypt_error":       "Failed to decrypt the stored key. Check the password.",
		"secret_parse_error":         "The stored key record is corrupted.",

		"refreshing_balance": "Refreshing balance...",
		"no_wallet_loaded":   "No wallet loaded. Please import a key first.",
		"async_error":        "Error",
		"balance_unknown":    "Unknown",
		"loading":            "Loading...",

		"welcome_first_run":        "Welcome! Please set up your password to get started.",
		"security_warning_message": "Never share your private key with anyone!",
		"password_strength_label":  "Strength:",
	},
	Chinese: {
		"app_title":              "Sui口袋钱包",
		"login_title":            "Sui口袋钱包 - 登录",
		"first_run_message":      "首次运行：请设置密码（用于本地加密）",
		"enter_password":         "输入密码",
		"confirm_password":       "确认密码",
		"create_password_button": "创建密码并进入",
		"login_message":          "请输入您的密码以登录",
		"login_button":           "登录",
		"exit_button":            "退出",
		"password_info":          "密码将使用Argon2算法哈希并保存在本地配置目录中。",
		"network_label":          "网络",
		"import_wallet_title":    "导入钱包",
		"import_wallet_button":   "导入钱包",
		"wallet_loaded":          "钱包已加载",
		"address_label":          "地址：",
		"balance_label":          "余额：",
		"refresh_balance_button": "刷新余额",
		"logout_button":          "退出登录",
		"copy_address_button":    "复制地址",
		"view_explorer":          "在浏览器中查看",

		"password_empty_error":     "密码不能为空",
		"password_mismatch_error":  "两次输入的密码不一致",
		"password_not_found_error": "未找到已保存的密码",
		"password_incorrect_error": "密码错误",
		"parse_hash_error":         "解析已保存的密码记录失败",
		"write_error":              "写入失败",

		"import_private_key_message": "请导入私钥以开始使用。",
		"private_key_hint":           "在此输入您的私钥...",
		"format_status":              "格式:",
		"valid_format":               "有效格式",
		"invalid_format":             "无效格式",
		"wallet_imported_success":    "钱包导入成功，地址为",
		"import_private_key_failed":  "导入私钥失败。请检查格式（Bech32、Base64 或十六进制）。",
		"wallet_loaded_from_storage": "已从加密存储恢复钱包",
		"wallet_logged_out_message":  "钱包已退出。请导入私钥以开始使用。",
		"stored_key_load_warning":    "无法加载已保存的私钥；请重新导入以再次保存。",
		"secret_decrypt_error":       "解密已保存的私钥失败。请检查密码。",
		"secret_parse_error":         "已保存的私钥记录已损坏。",

		"refreshing_balance": "正在刷新余额...",
		"no_wallet_loaded":   "未加载钱包。请先导入私钥。",
		"async_error":        "错误",
		"balance_unknown":    "未知",
		"loading":            "加载中...",

		"welcome_first_run":        "欢迎！请设置您的密码以开始使用。",
		"security_warning_message": "绝不要与任何人分享您的私钥！",
		"password_strength_label":  "强度：",
	},
}
